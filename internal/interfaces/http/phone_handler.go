package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain"
)

// PhoneHandler maneja el ledger de reventa de teléfonos (protegido).
type PhoneHandler struct {
	uc *usecase.PhoneUseCase
}

// NewPhoneHandler construye el handler.
func NewPhoneHandler(uc *usecase.PhoneUseCase) *PhoneHandler {
	return &PhoneHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar teléfono (IMEI único)
// @Tags         phones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePhoneRequest  true  "Datos del teléfono"
// @Success      201   {object}  dto.PhoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/phones [post]
func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el IMEI ya está registrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "brand, model e imei son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener teléfono por ID
// @Tags         phones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del teléfono"
// @Success      200  {object}  dto.PhoneResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/phones/{id} [get]
func (h *PhoneHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "teléfono no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar teléfonos
// @Tags         phones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PhoneResponse
// @Router       /api/phones [get]
func (h *PhoneHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar teléfono (IMEI inmutable)
// @Tags         phones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del teléfono"
// @Param        body  body  dto.UpdatePhoneRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PhoneResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/phones/{id} [put]
func (h *PhoneHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del teléfono inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "teléfono no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar teléfono (solo admin)
// @Tags         phones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del teléfono"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/phones/{id} [delete]
func (h *PhoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "teléfono no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "teléfono eliminado"})
}
