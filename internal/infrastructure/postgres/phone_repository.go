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

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

// PhoneRepo implementación del puerto PhoneRepository sobre PostgreSQL.
type PhoneRepo struct {
	q Querier
}

// NewPhoneRepository construye el adaptador del ledger de reventa. Pasar pool o tx (Querier).
func NewPhoneRepository(q Querier) *PhoneRepo {
	return &PhoneRepo{q: q}
}

const phoneColumns = `id, brand, model, color, imei, price, status, created_at`

func scanPhone(row pgx.Row) (*entity.Phone, error) {
	var p entity.Phone
	err := row.Scan(&p.ID, &p.Brand, &p.Model, &p.Color, &p.IMEI, &p.Price, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un teléfono nuevo. El constraint UNIQUE sobre imei respalda
// el chequeo de duplicados del caso de uso.
func (r *PhoneRepo) Create(p *entity.Phone) error {
	query := `
		INSERT INTO phones (id, brand, model, color, imei, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Brand, p.Model, p.Color, p.IMEI, p.Price, p.Status, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// GetByID obtiene un teléfono por ID; nil si no existe.
func (r *PhoneRepo) GetByID(id string) (*entity.Phone, error) {
	phone, err := scanPhone(r.q.QueryRow(context.Background(),
		`SELECT `+phoneColumns+` FROM phones WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get phone: %w", err)
	}
	return phone, nil
}

// GetByIMEI obtiene un teléfono por IMEI; nil si no existe.
func (r *PhoneRepo) GetByIMEI(imei string) (*entity.Phone, error) {
	phone, err := scanPhone(r.q.QueryRow(context.Background(),
		`SELECT `+phoneColumns+` FROM phones WHERE imei = $1`, imei))
	if err != nil {
		return nil, fmt.Errorf("get phone by imei: %w", err)
	}
	return phone, nil
}

// List lista todos los teléfonos, más recientes primero.
func (r *PhoneRepo) List() ([]*entity.Phone, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+phoneColumns+` FROM phones ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()

	var phones []*entity.Phone
	for rows.Next() {
		var p entity.Phone
		if err := rows.Scan(&p.ID, &p.Brand, &p.Model, &p.Color, &p.IMEI, &p.Price, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		phones = append(phones, &p)
	}
	return phones, rows.Err()
}

// Update actualiza un teléfono. El IMEI no aparece en el SET: es inmutable.
func (r *PhoneRepo) Update(p *entity.Phone) error {
	query := `
		UPDATE phones SET brand = $2, model = $3, color = $4, price = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Brand, p.Model, p.Color, p.Price, p.Status,
	)
	if err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	return nil
}

// Delete elimina un teléfono del ledger.
func (r *PhoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM phones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	return nil
}
