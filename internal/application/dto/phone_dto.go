package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

// CreatePhoneRequest entrada para registrar un teléfono de reventa.
type CreatePhoneRequest struct {
	Brand  string          `json:"brand" validate:"required,min=1,max=100"`
	Model  string          `json:"model" validate:"required,min=1,max=100"`
	Color  string          `json:"color"`
	IMEI   string          `json:"imei" validate:"required,min=1,max=20"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status" validate:"omitempty,oneof=available reserved sold"`
}

// UpdatePhoneRequest entrada para actualizar un teléfono. El IMEI es inmutable
// y no aparece aquí.
type UpdatePhoneRequest struct {
	Brand  *string          `json:"brand" validate:"omitempty,min=1,max=100"`
	Model  *string          `json:"model" validate:"omitempty,min=1,max=100"`
	Color  *string          `json:"color"`
	Price  *decimal.Decimal `json:"price"`
	Status *string          `json:"status" validate:"omitempty,oneof=available reserved sold"`
}

// PhoneResponse salida de un teléfono.
type PhoneResponse struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Color     string          `json:"color"`
	IMEI      string          `json:"imei"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToPhoneResponse mapea la entidad a su DTO de salida.
func ToPhoneResponse(p *entity.Phone) PhoneResponse {
	return PhoneResponse{
		ID:        p.ID,
		Brand:     p.Brand,
		Model:     p.Model,
		Color:     p.Color,
		IMEI:      p.IMEI,
		Price:     p.Price,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
