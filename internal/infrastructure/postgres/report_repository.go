package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para las vistas de inventario y el dashboard.
// Siempre se usa con el pool directo; nunca participa en transacciones del ledger.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const inventoryRowQuery = `
	SELECT i.id, i.name, i.sku, i.category, inv.quantity, inv.min_stock_level, inv.last_updated
	FROM inventory inv
	JOIN items i ON i.id = inv.item_id`

// ListInventory devuelve una fila por item con su stock actual.
func (r *ReportRepo) ListInventory(ctx context.Context) ([]repository.InventoryStatusRow, error) {
	return r.listRows(ctx, inventoryRowQuery+` ORDER BY i.name`)
}

// ListLowStock devuelve las filas con quantity <= min_stock_level (incluye agotados).
func (r *ReportRepo) ListLowStock(ctx context.Context) ([]repository.InventoryStatusRow, error) {
	return r.listRows(ctx, inventoryRowQuery+
		` WHERE inv.quantity <= inv.min_stock_level ORDER BY inv.quantity ASC, i.name`)
}

func (r *ReportRepo) listRows(ctx context.Context, query string, args ...any) ([]repository.InventoryStatusRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []repository.InventoryStatusRow
	for rows.Next() {
		var row repository.InventoryStatusRow
		if err := rows.Scan(&row.ItemID, &row.ItemName, &row.SKU, &row.Category,
			&row.Quantity, &row.MinStockLevel, &row.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetInventorySummary calcula los agregados en una sola consulta.
func (r *ReportRepo) GetInventorySummary(ctx context.Context) (*repository.InventorySummary, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE inv.quantity > inv.min_stock_level),
		       COUNT(*) FILTER (WHERE inv.quantity > 0 AND inv.quantity <= inv.min_stock_level),
		       COUNT(*) FILTER (WHERE inv.quantity = 0),
		       COALESCE(SUM(inv.quantity), 0),
		       COALESCE(SUM(inv.quantity * i.cost), 0)
		FROM inventory inv
		JOIN items i ON i.id = inv.item_id`
	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalItems, &s.InStock, &s.LowStock, &s.OutOfStock, &s.TotalUnits, &s.StockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	return &s, nil
}

// CountCustomers devuelve el total de clientes.
func (r *ReportRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// CountItems devuelve el total de items del catálogo.
func (r *ReportRepo) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// GetSalesStats devuelve número de ventas e ingresos acumulados.
func (r *ReportRepo) GetSalesStats(ctx context.Context) (int, decimal.Decimal, error) {
	var count int
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM sales`,
	).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales stats: %w", err)
	}
	return count, revenue, nil
}

// ListRecentSales devuelve las últimas ventas con nombres referenciados.
func (r *ReportRepo) ListRecentSales(ctx context.Context, limit int) ([]repository.RecentSaleRow, error) {
	query := `
		SELECT s.id, i.name,
		       CASE WHEN c.id IS NULL THEN NULL ELSE c.first_name || ' ' || c.last_name END,
		       s.quantity, s.total_amount, s.sale_date
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		LEFT JOIN items i ON i.id = s.item_id
		ORDER BY s.sale_date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	var out []repository.RecentSaleRow
	for rows.Next() {
		var row repository.RecentSaleRow
		if err := rows.Scan(&row.SaleID, &row.ItemName, &row.CustomerName,
			&row.Quantity, &row.TotalAmount, &row.SaleDate); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
