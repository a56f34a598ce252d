package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phonefixpro/phonefix-api/internal/application/ledger"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los fallos de serialización y deadlocks se devuelven
// como domain.ErrConflict para que el cliente pueda reintentar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	invRepo repository.InventoryRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	invRepo := NewInventoryRepository(tx)
	itemRepo := NewItemRepository(tx)

	if err := fn(saleRepo, invRepo, itemRepo); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
