package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// Nivel mínimo de alerta con el que nace la fila de inventario de un item.
const defaultMinStockLevel = 10

// ItemUseCase casos de uso CRUD del catálogo. El stock NO se toca aquí:
// la cantidad la gobierna el ledger de ventas y el umbral se ajusta vía inventario.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	invRepo  repository.InventoryRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, invRepo repository.InventoryRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, invRepo: invRepo}
}

// Create crea un item y abre su fila de inventario con cantidad 0 y umbral 10.
// Devuelve ErrDuplicate si el SKU ya existe.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != "" {
		existing, err := uc.itemRepo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Cost:        in.Cost,
		SKU:         in.SKU,
		CreatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}

	record := &entity.InventoryRecord{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		Quantity:      0,
		MinStockLevel: defaultMinStockLevel,
		LastUpdated:   now,
	}
	if err := uc.invRepo.Create(record); err != nil {
		return nil, err
	}

	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un item por ID; nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// List lista el catálogo, opcionalmente filtrado por categoría.
func (uc *ItemUseCase) List(category string) ([]dto.ItemResponse, error) {
	var (
		items []*entity.Item
		err   error
	)
	if category != "" {
		items, err = uc.itemRepo.ListByCategory(category)
	} else {
		items, err = uc.itemRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToItemResponse(it))
	}
	return out, nil
}

// Update actualiza los campos presentes. Un SKU nuevo se valida contra duplicados.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Cost = *in.Cost
	}
	if in.SKU != nil && *in.SKU != item.SKU {
		if *in.SKU != "" {
			existing, err := uc.itemRepo.GetBySKU(*in.SKU)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != item.ID {
				return nil, domain.ErrDuplicate
			}
		}
		item.SKU = *in.SKU
	}
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// Delete elimina un item. La fila de inventario cae por ON DELETE CASCADE y
// las ventas históricas conservan su fila con item_id NULL (ON DELETE SET NULL).
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}
