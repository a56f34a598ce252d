// Package ledger implementa el Sale–Inventory Ledger: la regla de que la
// cantidad de cada venta se refleja, con signo inverso, en el stock del item.
//
// Invariante: para todo Item,
//
//	inventory.quantity == stock_inicial − Σ(cantidades de ventas activas)
//
// en todo momento observable. Cada operación (crear, actualizar, eliminar una
// venta) corre en UNA transacción con bloqueo de fila (SELECT FOR UPDATE) sobre
// inventory, de modo que dos ventas simultáneas de la última unidad no puedan
// ganar las dos y el stock nunca quede negativo.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// SaleLedger aplica y deshace deltas de inventario por cada mutación de ventas.
type SaleLedger struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewSaleLedger construye el ledger.
func NewSaleLedger(txRunner TxRunner, itemRepo repository.ItemRepository) *SaleLedger {
	return &SaleLedger{txRunner: txRunner, itemRepo: itemRepo}
}

// SaleInput entrada para RecordSale y UpdateSale.
type SaleInput struct {
	CustomerID    *string
	ItemID        string
	Quantity      int
	UnitPrice     decimal.Decimal
	PaymentMethod string
	Notes         string
}

func (in SaleInput) validate() error {
	if in.ItemID == "" || in.Quantity < 1 || in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// total calcula el monto persistido: quantity × unit_price.
func (in SaleInput) total() decimal.Decimal {
	return in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
}

// RecordSale inserta la venta y descuenta el stock como una sola unidad atómica.
//
// Precondiciones: el item y su fila de inventario existen, y el stock alcanza
// para la cantidad pedida. Si alguna falla, no se escribe nada.
func (l *SaleLedger) RecordSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Existencia del item fuera de la tx (solo lectura); el chequeo de stock
	// va adentro, sobre la fila bloqueada.
	item, err := l.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		ItemID:        &in.ItemID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		TotalAmount:   in.total(),
		SaleDate:      now,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}

	err = l.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		_ repository.ItemRepository,
	) error {
		rec, err := invRepo.GetByItemIDForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		rec.Quantity -= in.Quantity
		rec.LastUpdated = now
		return invRepo.Update(rec)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale recalcula los deltas de inventario contra el estado PREVIO de la
// venta (leído con FOR UPDATE dentro de la tx, nunca de datos del caller).
//
//   - Mismo item: un solo delta (cantidad_vieja − cantidad_nueva).
//   - Cambio de item: restaura la cantidad vieja en el item anterior y debita
//     la nueva en el item nuevo, ambas filas bloqueadas en orden de id menor
//     primero para evitar deadlocks.
//
// Si el débito dejaría el stock negativo, el update completo se rechaza.
func (l *SaleLedger) UpdateSale(ctx context.Context, saleID string, in SaleInput) (*entity.Sale, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := l.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var updated *entity.Sale

	err = l.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		_ repository.ItemRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if err := l.applyInventoryDelta(invRepo, sale, in, now); err != nil {
			return err
		}

		sale.CustomerID = in.CustomerID
		sale.ItemID = &in.ItemID
		sale.Quantity = in.Quantity
		sale.UnitPrice = in.UnitPrice
		sale.TotalAmount = in.total()
		sale.PaymentMethod = in.PaymentMethod
		sale.Notes = in.Notes
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyInventoryDelta ajusta la(s) fila(s) de inventario afectadas por el
// cambio de la venta, dentro de la transacción del caller.
func (l *SaleLedger) applyInventoryDelta(
	invRepo repository.InventoryRepository,
	sale *entity.Sale,
	in SaleInput,
	now time.Time,
) error {
	// Venta huérfana (item eliminado fuera de banda): no hay nada que
	// restaurar, solo se debita el item nuevo.
	if sale.ItemID == nil {
		return l.debit(invRepo, in.ItemID, in.Quantity, now)
	}

	oldItemID := *sale.ItemID
	if oldItemID == in.ItemID {
		// Mismo item: restaurar lo viejo y debitar lo nuevo como UN delta.
		rec, err := invRepo.GetByItemIDForUpdate(oldItemID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Quantity+sale.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		rec.Quantity += sale.Quantity - in.Quantity
		rec.LastUpdated = now
		return invRepo.Update(rec)
	}

	// Cambio de item: bloquear ambas filas, id menor primero.
	var oldRec, newRec *entity.InventoryRecord
	var err error
	if oldItemID < in.ItemID {
		if oldRec, err = invRepo.GetByItemIDForUpdate(oldItemID); err != nil {
			return err
		}
		if newRec, err = invRepo.GetByItemIDForUpdate(in.ItemID); err != nil {
			return err
		}
	} else {
		if newRec, err = invRepo.GetByItemIDForUpdate(in.ItemID); err != nil {
			return err
		}
		if oldRec, err = invRepo.GetByItemIDForUpdate(oldItemID); err != nil {
			return err
		}
	}
	if oldRec == nil || newRec == nil {
		return domain.ErrNotFound
	}
	if newRec.Quantity < in.Quantity {
		return domain.ErrInsufficientStock
	}

	oldRec.Quantity += sale.Quantity
	oldRec.LastUpdated = now
	if err := invRepo.Update(oldRec); err != nil {
		return err
	}
	newRec.Quantity -= in.Quantity
	newRec.LastUpdated = now
	return invRepo.Update(newRec)
}

// debit resta quantity del stock del item, validando contra la fila bloqueada.
func (l *SaleLedger) debit(invRepo repository.InventoryRepository, itemID string, quantity int, now time.Time) error {
	rec, err := invRepo.GetByItemIDForUpdate(itemID)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	if rec.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	rec.Quantity -= quantity
	rec.LastUpdated = now
	return invRepo.Update(rec)
}

// DeleteSale restaura la cantidad registrada al stock del item y elimina la
// venta, como una sola unidad atómica. Devuelve el último estado de la venta.
//
// Si el item fue eliminado fuera de banda (item_id NULL por ON DELETE SET NULL)
// la restauración se omite sin error: no queda fila de inventario que acreditar.
func (l *SaleLedger) DeleteSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var deleted *entity.Sale

	err := l.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		_ repository.ItemRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if sale.ItemID != nil {
			rec, err := invRepo.GetByItemIDForUpdate(*sale.ItemID)
			if err != nil {
				return err
			}
			if rec != nil {
				rec.Quantity += sale.Quantity
				rec.LastUpdated = now
				if err := invRepo.Update(rec); err != nil {
					return err
				}
			}
		}

		if err := saleRepo.Delete(sale.ID); err != nil {
			return err
		}
		deleted = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
