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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, role, created_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	user, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetByUsername obtiene un usuario por username; nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	user, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// GetByUsernameOrEmail detecta colisiones de registro.
func (r *UserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	user, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2`, username, email))
	if err != nil {
		return nil, fmt.Errorf("get user by username or email: %w", err)
	}
	return user, nil
}
