package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las escrituras llegan siempre atadas a la tx del ledger.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, item_id, quantity, unit_price, total_amount, sale_date, payment_method, notes`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CustomerID, &s.ItemID, &s.Quantity, &s.UnitPrice,
		&s.TotalAmount, &s.SaleDate, &s.PaymentMethod, &s.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create persiste una venta nueva.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, item_id, quantity, unit_price, total_amount, sale_date, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.ItemID, sale.Quantity, sale.UnitPrice,
		sale.TotalAmount, sale.SaleDate, sale.PaymentMethod, sale.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// GetByIDForUpdate bloquea la fila de la venta (SELECT FOR UPDATE) para que
// updates y deletes concurrentes sobre la misma venta se serialicen.
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get sale for update: %w", err)
	}
	return sale, nil
}

// Update reescribe la venta completa.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET customer_id = $2, item_id = $3, quantity = $4, unit_price = $5,
			total_amount = $6, payment_method = $7, notes = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.ItemID, sale.Quantity, sale.UnitPrice,
		sale.TotalAmount, sale.PaymentMethod, sale.Notes,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

const saleWithRefsQuery = `
	SELECT s.id, s.customer_id, s.item_id, s.quantity, s.unit_price, s.total_amount,
	       s.sale_date, s.payment_method, s.notes,
	       c.first_name, c.last_name, c.email,
	       i.name, i.sku
	FROM sales s
	LEFT JOIN customers c ON c.id = s.customer_id
	LEFT JOIN items i ON i.id = s.item_id`

func scanSaleWithRefs(row pgx.Row) (*repository.SaleWithRefs, error) {
	var s repository.SaleWithRefs
	err := row.Scan(&s.ID, &s.CustomerID, &s.ItemID, &s.Quantity, &s.UnitPrice,
		&s.TotalAmount, &s.SaleDate, &s.PaymentMethod, &s.Notes,
		&s.CustomerFirstName, &s.CustomerLastName, &s.CustomerEmail,
		&s.ItemName, &s.ItemSKU)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetWithRefs obtiene una venta con nombre de cliente e item (LEFT JOIN).
func (r *SaleRepo) GetWithRefs(id string) (*repository.SaleWithRefs, error) {
	sale, err := scanSaleWithRefs(r.q.QueryRow(context.Background(),
		saleWithRefsQuery+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get sale with refs: %w", err)
	}
	return sale, nil
}

// List lista todas las ventas con referencias, más recientes primero.
func (r *SaleRepo) List() ([]repository.SaleWithRefs, error) {
	return r.listWithRefs(saleWithRefsQuery + ` ORDER BY s.sale_date DESC`)
}

// ListByDateRange lista ventas con sale_date dentro de [start, end].
func (r *SaleRepo) ListByDateRange(start, end time.Time) ([]repository.SaleWithRefs, error) {
	return r.listWithRefs(saleWithRefsQuery+
		` WHERE s.sale_date >= $1 AND s.sale_date <= $2 ORDER BY s.sale_date DESC`, start, end)
}

func (r *SaleRepo) listWithRefs(query string, args ...any) ([]repository.SaleWithRefs, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []repository.SaleWithRefs
	for rows.Next() {
		var s repository.SaleWithRefs
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.ItemID, &s.Quantity, &s.UnitPrice,
			&s.TotalAmount, &s.SaleDate, &s.PaymentMethod, &s.Notes,
			&s.CustomerFirstName, &s.CustomerLastName, &s.CustomerEmail,
			&s.ItemName, &s.ItemSKU); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
