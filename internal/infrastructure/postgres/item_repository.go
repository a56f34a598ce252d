package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, category, price, cost, sku, created_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.Price, &it.Cost, &it.SKU, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo item del catálogo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, category, price, cost, sku, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category,
		item.Price, item.Cost, item.SKU, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID; nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetBySKU obtiene un item por SKU; nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM items WHERE sku = $1`, sku))
	if err != nil {
		return nil, fmt.Errorf("get item by sku: %w", err)
	}
	return item, nil
}

// List lista el catálogo completo, más recientes primero.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	return r.list(`SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`)
}

// ListByCategory lista los items de una categoría.
func (r *ItemRepo) ListByCategory(category string) ([]*entity.Item, error) {
	return r.list(`SELECT `+itemColumns+` FROM items WHERE category = $1 ORDER BY created_at DESC`, category)
}

func (r *ItemRepo) list(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.Price, &it.Cost, &it.SKU, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Update actualiza un item existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, category = $4, price = $5, cost = $6, sku = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Price, item.Cost, item.SKU,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item. El esquema cascadea inventory y deja sales.item_id en NULL.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
