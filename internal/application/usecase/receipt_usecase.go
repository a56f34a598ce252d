package usecase

import (
	"context"
	"fmt"

	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator}
}

// DownloadReceipt recupera la venta con sus referencias y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetWithRefs(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	short := sale.ID
	if len(short) > 8 {
		short = short[:8]
	}
	filename = fmt.Sprintf("recibo_%s.pdf", short)
	return pdfBytes, filename, nil
}
