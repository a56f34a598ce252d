package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatusRow es una fila del reporte de inventario: Item + InventoryRecord.
// El estado derivado (In/Low/Out of Stock) se calcula en el caso de uso, no aquí.
type InventoryStatusRow struct {
	ItemID        string
	ItemName      string
	SKU           string
	Category      string
	Quantity      int
	MinStockLevel int
	LastUpdated   time.Time
}

// InventorySummary agregados del inventario para el dashboard.
type InventorySummary struct {
	TotalItems int
	InStock    int
	LowStock   int
	OutOfStock int
	TotalUnits int
	StockValue decimal.Decimal // Σ quantity × cost
}

// RecentSaleRow fila ligera para el widget de ventas recientes.
type RecentSaleRow struct {
	SaleID       string
	ItemName     *string
	CustomerName *string
	Quantity     int
	TotalAmount  decimal.Decimal
	SaleDate     time.Time
}

// ReportRepository consultas de solo lectura (inventario y dashboard).
// No participa en transacciones del ledger: consume únicamente el estado
// persistido de quantity/min_stock_level.
type ReportRepository interface {
	ListInventory(ctx context.Context) ([]InventoryStatusRow, error)
	ListLowStock(ctx context.Context) ([]InventoryStatusRow, error)
	GetInventorySummary(ctx context.Context) (*InventorySummary, error)
	CountCustomers(ctx context.Context) (int, error)
	CountItems(ctx context.Context) (int, error)
	// GetSalesStats devuelve número de ventas e ingresos acumulados.
	GetSalesStats(ctx context.Context) (count int, revenue decimal.Decimal, err error)
	ListRecentSales(ctx context.Context, limit int) ([]RecentSaleRow, error)
}
