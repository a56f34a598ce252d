package entity

import "time"

// InventoryRecord es la fila de stock asociada 1—1 a un Item.
// Invariante: Quantity nunca negativa; LastUpdated se estampa en cada mutación.
// El estado (In Stock / Low Stock / Out of Stock) es derivado, nunca se persiste.
type InventoryRecord struct {
	ID            string
	ItemID        string
	Quantity      int
	MinStockLevel int
	LastUpdated   time.Time
}
