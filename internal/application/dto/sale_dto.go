package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerID    *string         `json:"customer_id" validate:"omitempty,uuid"`
	ItemID        string          `json:"item_id" validate:"required,uuid"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// UpdateSaleRequest entrada para actualizar una venta. Misma forma que la
// creación: el update recalcula los deltas de stock contra el estado previo.
type UpdateSaleRequest = CreateSaleRequest

// SaleResponse salida de una venta, con nombres referenciados cuando existen.
type SaleResponse struct {
	ID            string          `json:"id"`
	CustomerID    *string         `json:"customer_id"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	ItemID        *string         `json:"item_id"`
	ItemName      *string         `json:"item_name,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SaleDate      time.Time       `json:"sale_date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// DeleteSaleResponse respuesta de DELETE /api/sales/:id: la confirmación más
// el último estado de la venta eliminada.
type DeleteSaleResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}

// ToSaleResponse mapea una venta sin datos referenciados (respuesta de escritura).
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		SaleDate:      s.SaleDate,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
	}
}

// ToSaleResponseWithRefs mapea una venta con nombres de cliente e item resueltos.
func ToSaleResponseWithRefs(s *repository.SaleWithRefs) SaleResponse {
	resp := ToSaleResponse(&s.Sale)
	resp.ItemName = s.ItemName
	if s.CustomerFirstName != nil {
		name := *s.CustomerFirstName
		if s.CustomerLastName != nil && *s.CustomerLastName != "" {
			name += " " + *s.CustomerLastName
		}
		resp.CustomerName = &name
	}
	return resp
}
