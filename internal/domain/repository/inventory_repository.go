package repository

import "github.com/phonefixpro/phonefix-api/internal/domain/entity"

// InventoryRepository define el puerto para la fila de stock 1—1 con Item.
// Usado dentro de transacciones del ledger para garantizar consistencia.
type InventoryRepository interface {
	Create(record *entity.InventoryRecord) error
	GetByItemID(itemID string) (*entity.InventoryRecord, error)
	// GetByItemIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetByItemIDForUpdate(itemID string) (*entity.InventoryRecord, error)
	Update(record *entity.InventoryRecord) error
}
