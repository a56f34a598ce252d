package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
// KPIs de la tienda más el widget de ventas recientes.
type DashboardSummaryResponse struct {
	TotalCustomers int             `json:"total_customers"`
	TotalItems     int             `json:"total_items"`
	TotalSales     int             `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	LowStockItems  int             `json:"low_stock_items"`
	RecentSales    []RecentSaleDTO `json:"recent_sales"`
}

// RecentSaleDTO fila ligera del widget de ventas recientes.
type RecentSaleDTO struct {
	ID           string          `json:"id"`
	ItemName     *string         `json:"item_name"`
	CustomerName *string         `json:"customer_name"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SaleDate     time.Time       `json:"sale_date"`
}
