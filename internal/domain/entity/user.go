package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
}
