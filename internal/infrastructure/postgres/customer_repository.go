package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, first_name, last_name, email, phone, address, status, product, repair, price, note, created_at`

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.Status, c.Product, c.Repair, c.Price, c.Note, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.Status, &c.Product, &c.Repair, &c.Price, &c.Note, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes, más recientes primero.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
			&c.Status, &c.Product, &c.Repair, &c.Price, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $2, last_name = $3, email = $4, phone = $5,
			address = $6, status = $7, product = $8, repair = $9, price = $10, note = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.Status, c.Product, c.Repair, c.Price, c.Note,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Sus ventas quedan con customer_id NULL.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
