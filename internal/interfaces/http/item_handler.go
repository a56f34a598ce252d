package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain"
)

// ItemHandler maneja las peticiones HTTP del catálogo (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear item (abre inventario en 0)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del item inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar items
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar items de una categoría
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Categoría"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/category/{category} [get]
func (h *ItemHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del item inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar item (solo admin)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "item eliminado"})
}
