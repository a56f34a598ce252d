package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Dentro del ledger siempre se usa atado a una tx.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(&rec.ID, &rec.ItemID, &rec.Quantity, &rec.MinStockLevel, &rec.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Create abre la fila de stock de un item.
func (r *InventoryRepo) Create(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, item_id, quantity, min_stock_level, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ItemID, rec.Quantity, rec.MinStockLevel, rec.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByItemID obtiene la fila de stock de un item; nil si no existe.
func (r *InventoryRepo) GetByItemID(itemID string) (*entity.InventoryRecord, error) {
	rec, err := scanInventory(r.q.QueryRow(context.Background(),
		`SELECT id, item_id, quantity, min_stock_level, last_updated
		 FROM inventory WHERE item_id = $1`, itemID))
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return rec, nil
}

// GetByItemIDForUpdate bloquea la fila de stock (SELECT FOR UPDATE) hasta el
// fin de la transacción. Escrituras concurrentes sobre el mismo item se
// serializan aquí.
func (r *InventoryRepo) GetByItemIDForUpdate(itemID string) (*entity.InventoryRecord, error) {
	rec, err := scanInventory(r.q.QueryRow(context.Background(),
		`SELECT id, item_id, quantity, min_stock_level, last_updated
		 FROM inventory WHERE item_id = $1 FOR UPDATE`, itemID))
	if err != nil {
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return rec, nil
}

// Update persiste cantidad, umbral y last_updated.
func (r *InventoryRepo) Update(rec *entity.InventoryRecord) error {
	query := `
		UPDATE inventory SET quantity = $2, min_stock_level = $3, last_updated = $4
		WHERE item_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ItemID, rec.Quantity, rec.MinStockLevel, rec.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}
