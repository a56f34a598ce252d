package usecase

import (
	"context"

	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// ReceiptPDFGenerator genera la representación gráfica (PDF) del recibo de
// una venta. Implementado en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *repository.SaleWithRefs) ([]byte, error)
}
