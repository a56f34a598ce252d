package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta que debita Quantity unidades del Item referenciado.
//
// CustomerID es opcional (venta de mostrador). ItemID es nullable porque el
// esquema usa ON DELETE SET NULL: si el item se elimina, la venta histórica
// sobrevive sin referencia.
//
// TotalAmount = Quantity × UnitPrice se persiste al crear/actualizar para que
// los totales históricos no cambien si cambia la lógica de precios.
type Sale struct {
	ID            string
	CustomerID    *string
	ItemID        *string
	Quantity      int
	UnitPrice     decimal.Decimal // capturado al momento de la venta
	TotalAmount   decimal.Decimal
	SaleDate      time.Time
	PaymentMethod string
	Notes         string
}
