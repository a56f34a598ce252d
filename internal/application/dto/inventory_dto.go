package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRowResponse fila de GET /api/inventory y /api/inventory/low-stock.
// StockStatus es derivado de quantity vs min_stock_level, nunca persistido.
type InventoryRowResponse struct {
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	StockStatus   string    `json:"stock_status"`
	LastUpdated   time.Time `json:"last_updated"`
}

// InventorySummaryResponse agregados de GET /api/inventory/summary.
type InventorySummaryResponse struct {
	TotalItems int             `json:"total_items"`
	InStock    int             `json:"in_stock"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	TotalUnits int             `json:"total_units"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// UpdateInventoryLevelRequest entrada de PUT /api/inventory/:itemId.
// Quantity fija el stock a un valor absoluto (reposición manual); las ventas
// siguen moviendo la cantidad solo a través del ledger.
type UpdateInventoryLevelRequest struct {
	Quantity      *int `json:"quantity" validate:"omitempty,min=0"`
	MinStockLevel *int `json:"min_stock_level" validate:"omitempty,min=0"`
}
