package repository

import "github.com/phonefixpro/phonefix-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByUsernameOrEmail se usa en el registro para detectar duplicados.
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
}
