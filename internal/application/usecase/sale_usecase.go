package usecase

import (
	"context"
	"time"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/ledger"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// SaleUseCase expone las ventas hacia HTTP: las escrituras delegan en el
// ledger (transaccional) y las lecturas van directo al repositorio.
type SaleUseCase struct {
	ledger   *ledger.SaleLedger
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(l *ledger.SaleLedger, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{ledger: l, saleRepo: saleRepo}
}

func toLedgerInput(in dto.CreateSaleRequest) ledger.SaleInput {
	return ledger.SaleInput{
		CustomerID:    in.CustomerID,
		ItemID:        in.ItemID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
}

// Create registra la venta y descuenta stock vía el ledger.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.ledger.RecordSale(ctx, toLedgerInput(in))
	if err != nil {
		return nil, err
	}
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Update reescribe la venta y ajusta los deltas de stock vía el ledger.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.ledger.UpdateSale(ctx, id, toLedgerInput(in))
	if err != nil {
		return nil, err
	}
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Delete elimina la venta restaurando el stock vía el ledger y devuelve el
// último estado que tenía la venta antes de borrarse.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.ledger.DeleteSale(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// GetByID obtiene una venta con nombres referenciados resueltos.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetWithRefs(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToSaleResponseWithRefs(sale)
	return &resp, nil
}

// List lista ventas, opcionalmente acotadas a [start, end]. Un extremo nil
// deja el rango abierto por ese lado.
func (uc *SaleUseCase) List(start, end *time.Time) ([]dto.SaleResponse, error) {
	var (
		sales []repository.SaleWithRefs
		err   error
	)
	if start != nil || end != nil {
		from := time.Time{}
		if start != nil {
			from = *start
		}
		to := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		if end != nil {
			to = *end
		}
		sales, err = uc.saleRepo.ListByDateRange(from, to)
	} else {
		sales, err = uc.saleRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, dto.ToSaleResponseWithRefs(&sales[i]))
	}
	return out, nil
}
