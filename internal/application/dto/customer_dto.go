package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para registrar un cliente con su recepción.
type CreateCustomerRequest struct {
	FirstName string          `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string          `json:"last_name" validate:"required,min=1,max=100"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Status    string          `json:"status"`
	Product   string          `json:"product"`
	Repair    string          `json:"repair"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (campos opcionales).
type UpdateCustomerRequest struct {
	FirstName *string          `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string          `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string          `json:"email" validate:"omitempty,email"`
	Phone     *string          `json:"phone"`
	Address   *string          `json:"address"`
	Status    *string          `json:"status"`
	Product   *string          `json:"product"`
	Repair    *string          `json:"repair"`
	Price     *decimal.Decimal `json:"price"`
	Note      *string          `json:"note"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Status    string          `json:"status"`
	Product   string          `json:"product"`
	Repair    string          `json:"repair"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToCustomerResponse mapea la entidad a su DTO de salida.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		Product:   c.Product,
		Repair:    c.Repair,
		Price:     c.Price,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}
