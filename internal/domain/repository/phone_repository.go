package repository

import "github.com/phonefixpro/phonefix-api/internal/domain/entity"

// PhoneRepository define el puerto de persistencia para el ledger de reventa.
type PhoneRepository interface {
	Create(phone *entity.Phone) error
	GetByID(id string) (*entity.Phone, error)
	GetByIMEI(imei string) (*entity.Phone, error)
	List() ([]*entity.Phone, error)
	Update(phone *entity.Phone) error
	Delete(id string) error
}
