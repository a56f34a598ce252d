package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
// Toda mutación pasa por el ledger: la respuesta de error refleja su taxonomía.
type SaleHandler struct {
	uc        *usecase.SaleUseCase
	receiptUC *usecase.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, receiptUC *usecase.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receiptUC: receiptUC}
}

// saleError traduce los errores del ledger a su respuesta HTTP.
func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta o item no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad pedida"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la venta inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Registrar venta (descuenta stock)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        end    query  string  false  "Fecha final (RFC 3339 o 2006-01-02)"
// @Success      200    {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido"})
		}
		start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido"})
		}
		// Fecha sin hora: incluir el día completo.
		if len(s) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		end = &t
	}
	out, err := h.uc.List(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByDateRange godoc
// @Summary      Listar ventas en un rango de fechas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        end_date    query  string  true  "Fecha final (RFC 3339 o 2006-01-02)"
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/date-range [get]
func (h *SaleHandler) ListByDateRange(c *fiber.Ctx) error {
	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr == "" || endStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos"})
	}
	start, err := parseDate(startStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido"})
	}
	end, err := parseDate(endStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido"})
	}
	if len(endStr) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	out, err := h.uc.List(&start, &end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Update godoc
// @Summary      Actualizar venta (ajusta stock por delta)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Datos nuevos"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta (restaura stock y devuelve su último estado)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.DeleteSaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(dto.DeleteSaleResponse{Message: "venta eliminada", Sale: *out})
}

// Receipt godoc
// @Summary      Descargar recibo PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
