package ledger

import (
	"context"

	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de ventas:
// o se aplican la venta y el ajuste de stock juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
