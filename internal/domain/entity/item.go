package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías usuales del catálogo. La columna es texto libre; estas constantes
// solo evitan strings repetidos en seeds y tests.
const (
	CategoryRepair      = "Repair"
	CategoryAccessories = "Accessories"
	CategoryParts       = "Parts"
)

// Item representa un producto, repuesto o servicio de reparación del catálogo.
// El stock NO vive aquí: se maneja en InventoryRecord (1—1) vía el ledger de ventas.
type Item struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de adquisición
	SKU         string          // opcional, único si no está vacío
	CreatedAt   time.Time
}
