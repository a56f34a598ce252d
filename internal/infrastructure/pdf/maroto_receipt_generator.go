// Package pdf implementa la generación del recibo de venta de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Recibo + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto (o "Venta de mostrador")         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Método de pago / TOTAL                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Notas + leyenda de garantía                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/phonefixpro/phonefix-api/internal/application/usecase"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

const shopName = "PhoneFix Pro"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *repository.SaleWithRefs,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(sale))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y N° de recibo + fecha (der).
func headerRow(sale *repository.SaleWithRefs) core.Row {
	short := sale.ID
	if len(short) > 8 {
		short = short[:8]
	}
	fecha := sale.SaleDate.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reparación y venta de celulares", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+short, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente, o venta de mostrador si no hay referencia.
func customerRow(sale *repository.SaleWithRefs) core.Row {
	name := "Venta de mostrador"
	contact := ""
	if sale.CustomerFirstName != nil {
		name = *sale.CustomerFirstName
		if sale.CustomerLastName != nil && *sale.CustomerLastName != "" {
			name += " " + *sale.CustomerLastName
		}
		if sale.CustomerEmail != nil {
			contact = "Email: " + nonEmpty(*sale.CustomerEmail, "—")
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del detalle.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRow: la línea única del recibo (una venta = un item).
func tableDetailRow(sale *repository.SaleWithRefs) core.Row {
	desc := "Item eliminado del catálogo"
	if sale.ItemName != nil {
		desc = *sale.ItemName
		if sale.ItemSKU != nil && *sale.ItemSKU != "" {
			desc += " (" + *sale.ItemSKU + ")"
		}
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", sale.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(
			desc,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"$"+sale.UnitPrice.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"$"+sale.TotalAmount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: método de pago y total, alineados a la derecha.
func totalsRow(sale *repository.SaleWithRefs) core.Row {
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Método de pago:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 8,
			}),
		),
		col.New(3).Add(
			text.New(nonEmpty(sale.PaymentMethod, "—"), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New("$"+sale.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 8,
			}),
		),
	)
}

// footerRows: notas de la venta + leyenda de garantía.
func footerRows(sale *repository.SaleWithRefs) []core.Row {
	var rows []core.Row
	if sale.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+sale.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Gracias por su compra. Las reparaciones cuentan con 30 días de garantía "+
				"presentando este recibo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
