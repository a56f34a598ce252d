package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "first_name y last_name son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes (búsqueda insensible a acentos con ?q=)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar en nombre, email, teléfono o equipo"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del cliente inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
