package repository

import "github.com/phonefixpro/phonefix-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	ListByCategory(category string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
