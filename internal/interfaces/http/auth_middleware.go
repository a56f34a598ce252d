package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/pkg/jwt"
)

// Locals keys para la identidad extraída del token.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol del token no está en la lista.
// Se monta después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
