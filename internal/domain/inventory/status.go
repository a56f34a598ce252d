package inventory

// Etiquetas de estado de stock (derivadas, nunca persistidas).
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Status deriva la etiqueta de stock a partir de la cantidad y el umbral mínimo
// (servicio de dominio):
//
//	quantity == 0                -> Out of Stock
//	0 < quantity <= minLevel     -> Low Stock
//	quantity > minLevel          -> In Stock
func Status(quantity, minStockLevel int) string {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= minStockLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
