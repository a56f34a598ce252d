package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
)

// DashboardHandler expone el resumen de KPIs de la tienda (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
