package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

// PhoneUseCase casos de uso del ledger de reventa de teléfonos.
// El IMEI es único e inmutable: se fija en Create y ningún Update lo toca.
type PhoneUseCase struct {
	repo repository.PhoneRepository
}

// NewPhoneUseCase construye el caso de uso.
func NewPhoneUseCase(repo repository.PhoneRepository) *PhoneUseCase {
	return &PhoneUseCase{repo: repo}
}

// Create registra un teléfono. Devuelve ErrDuplicate si el IMEI ya existe.
func (uc *PhoneUseCase) Create(in dto.CreatePhoneRequest) (*dto.PhoneResponse, error) {
	if in.Brand == "" || in.Model == "" || in.IMEI == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByIMEI(in.IMEI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	status := in.Status
	if status == "" {
		status = entity.PhoneStatusAvailable
	}
	phone := &entity.Phone{
		ID:        uuid.New().String(),
		Brand:     in.Brand,
		Model:     in.Model,
		Color:     in.Color,
		IMEI:      in.IMEI,
		Price:     in.Price,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(phone); err != nil {
		return nil, err
	}
	resp := dto.ToPhoneResponse(phone)
	return &resp, nil
}

// GetByID obtiene un teléfono por ID; nil si no existe.
func (uc *PhoneUseCase) GetByID(id string) (*dto.PhoneResponse, error) {
	phone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, nil
	}
	resp := dto.ToPhoneResponse(phone)
	return &resp, nil
}

// List lista todos los teléfonos del ledger.
func (uc *PhoneUseCase) List() ([]dto.PhoneResponse, error) {
	phones, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PhoneResponse, 0, len(phones))
	for _, p := range phones {
		out = append(out, dto.ToPhoneResponse(p))
	}
	return out, nil
}

// Update actualiza los campos presentes; el IMEI nunca cambia.
func (uc *PhoneUseCase) Update(id string, in dto.UpdatePhoneRequest) (*dto.PhoneResponse, error) {
	phone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, nil
	}
	if in.Brand != nil {
		if *in.Brand == "" {
			return nil, domain.ErrInvalidInput
		}
		phone.Brand = *in.Brand
	}
	if in.Model != nil {
		if *in.Model == "" {
			return nil, domain.ErrInvalidInput
		}
		phone.Model = *in.Model
	}
	if in.Color != nil {
		phone.Color = *in.Color
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		phone.Price = *in.Price
	}
	if in.Status != nil {
		phone.Status = *in.Status
	}
	if err := uc.repo.Update(phone); err != nil {
		return nil, err
	}
	resp := dto.ToPhoneResponse(phone)
	return &resp, nil
}

// Delete elimina un teléfono del ledger de reventa.
func (uc *PhoneUseCase) Delete(id string) error {
	phone, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if phone == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
