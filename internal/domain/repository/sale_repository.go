package repository

import (
	"time"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

// SaleWithRefs es una venta con los datos denormalizados de cliente e item
// que los listados muestran (LEFT JOIN: ambas referencias pueden ser NULL).
type SaleWithRefs struct {
	entity.Sale
	CustomerFirstName *string
	CustomerLastName  *string
	CustomerEmail     *string
	ItemName          *string
	ItemSKU           *string
}

// SaleRepository define el puerto de persistencia para Sale.
// Las operaciones de escritura se invocan desde el ledger dentro de una transacción.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate bloquea la fila de la venta (SELECT FOR UPDATE) para que
	// dos updates concurrentes sobre la misma venta se serialicen.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	GetWithRefs(id string) (*SaleWithRefs, error)
	List() ([]SaleWithRefs, error)
	ListByDateRange(start, end time.Time) ([]SaleWithRefs, error)
}
