package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/phonefixpro/phonefix-api/internal/interfaces/http"
	pkgjwt "github.com/phonefixpro/phonefix-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "tester"
	testIssuer    = "phonefix-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_StaffAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp("admin", "staff")
	resp := doRequest(t, app, tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"staff debe poder acceder a ruta que permite admin o staff")
}

// El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"staff no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "staff", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUsername, username)
	assert.Equal(t, "staff", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
