package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
	"github.com/phonefixpro/phonefix-api/pkg/strutil"
)

// CustomerUseCase casos de uso CRUD de clientes y su recepción de equipo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    in.Status,
		Product:   in.Product,
		Repair:    in.Repair,
		Price:     in.Price,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// List lista clientes. Con query no vacío filtra por nombre, email, teléfono o
// equipo, insensible a mayúsculas y acentos ("Pérez" matchea "perez").
func (uc *CustomerUseCase) List(query string) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		if query != "" && !customerMatches(c, query) {
			continue
		}
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

func customerMatches(c *entity.Customer, query string) bool {
	return strutil.ContainsFold(c.FirstName+" "+c.LastName, query) ||
		strutil.ContainsFold(c.Email, query) ||
		strutil.ContainsFold(c.Phone, query) ||
		strutil.ContainsFold(c.Product, query)
}

// Update actualiza los campos presentes.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if *in.LastName == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.LastName = *in.LastName
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Status != nil {
		customer.Status = *in.Status
	}
	if in.Product != nil {
		customer.Product = *in.Product
	}
	if in.Repair != nil {
		customer.Repair = *in.Repair
	}
	if in.Price != nil {
		customer.Price = *in.Price
	}
	if in.Note != nil {
		customer.Note = *in.Note
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente. Sus ventas sobreviven con customer_id NULL.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
