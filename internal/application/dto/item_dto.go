package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un item del catálogo.
// La creación también abre su fila de inventario (cantidad 0, mínimo 10).
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku" validate:"omitempty,max=100"`
}

// UpdateItemRequest entrada para actualizar un item (campos opcionales).
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	SKU         *string          `json:"sku" validate:"omitempty,max=100"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToItemResponse mapea la entidad a su DTO de salida.
func ToItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Price:       it.Price,
		Cost:        it.Cost,
		SKU:         it.SKU,
		CreatedAt:   it.CreatedAt,
	}
}
