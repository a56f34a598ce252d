package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain"
)

// InventoryHandler maneja las vistas de inventario (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario completo con estado derivado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryRowResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Items en Low Stock u Out of Stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryRowResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Agregados del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateLevel godoc
// @Summary      Reponer stock y/o ajustar umbral de alerta de un item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Param        body    body  dto.UpdateInventoryLevelRequest  true  "quantity y/o min_stock_level"
// @Success      200     {object}  dto.InventoryRowResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/inventory/{itemId} [put]
func (h *InventoryHandler) UpdateLevel(c *fiber.Ctx) error {
	var in dto.UpdateInventoryLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLevel(c.Context(), c.Params("itemId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity o min_stock_level inválidos"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
