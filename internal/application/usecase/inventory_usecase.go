package usecase

import (
	"context"
	"time"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/ledger"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/inventory"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// InventoryUseCase vistas de inventario, reposición manual de stock y ajuste
// del umbral de alerta. La reposición corre por el mismo TxRunner que las
// ventas: la fila se bloquea con FOR UPDATE y ningún RecordSale concurrente
// puede perder su decremento contra una escritura de reposición.
type InventoryUseCase struct {
	reportRepo repository.ReportRepository
	txRunner   ledger.TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(reportRepo repository.ReportRepository, txRunner ledger.TxRunner) *InventoryUseCase {
	return &InventoryUseCase{reportRepo: reportRepo, txRunner: txRunner}
}

func toInventoryRow(r repository.InventoryStatusRow) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		ItemID:        r.ItemID,
		ItemName:      r.ItemName,
		SKU:           r.SKU,
		Category:      r.Category,
		Quantity:      r.Quantity,
		MinStockLevel: r.MinStockLevel,
		StockStatus:   inventory.Status(r.Quantity, r.MinStockLevel),
		LastUpdated:   r.LastUpdated,
	}
}

// List devuelve el inventario completo con el estado derivado por fila.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryRowResponse, error) {
	rows, err := uc.reportRepo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInventoryRow(r))
	}
	return out, nil
}

// ListLowStock devuelve las filas en Low Stock u Out of Stock.
func (uc *InventoryUseCase) ListLowStock(ctx context.Context) ([]dto.InventoryRowResponse, error) {
	rows, err := uc.reportRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInventoryRow(r))
	}
	return out, nil
}

// GetSummary devuelve los agregados del inventario.
func (uc *InventoryUseCase) GetSummary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	s, err := uc.reportRepo.GetInventorySummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventorySummaryResponse{
		TotalItems: s.TotalItems,
		InStock:    s.InStock,
		LowStock:   s.LowStock,
		OutOfStock: s.OutOfStock,
		TotalUnits: s.TotalUnits,
		StockValue: s.StockValue,
	}, nil
}

// UpdateLevel repone stock (cantidad absoluta) y/o ajusta el umbral
// min_stock_level de un item, dentro de una transacción con la fila
// bloqueada. Al menos uno de los dos campos debe venir.
func (uc *InventoryUseCase) UpdateLevel(ctx context.Context, itemID string, in dto.UpdateInventoryLevelRequest) (*dto.InventoryRowResponse, error) {
	if in.Quantity == nil && in.MinStockLevel == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStockLevel != nil && *in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.InventoryRowResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		invRepo repository.InventoryRepository,
		_ repository.ItemRepository,
	) error {
		rec, err := invRepo.GetByItemIDForUpdate(itemID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if in.Quantity != nil {
			rec.Quantity = *in.Quantity
		}
		if in.MinStockLevel != nil {
			rec.MinStockLevel = *in.MinStockLevel
		}
		rec.LastUpdated = time.Now()
		if err := invRepo.Update(rec); err != nil {
			return err
		}
		out = &dto.InventoryRowResponse{
			ItemID:        rec.ItemID,
			Quantity:      rec.Quantity,
			MinStockLevel: rec.MinStockLevel,
			StockStatus:   inventory.Status(rec.Quantity, rec.MinStockLevel),
			LastUpdated:   rec.LastUpdated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
