package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

type memPhoneRepo struct {
	phones map[string]*entity.Phone
}

func newMemPhoneRepo() *memPhoneRepo {
	return &memPhoneRepo{phones: make(map[string]*entity.Phone)}
}

func (r *memPhoneRepo) Create(p *entity.Phone) error {
	r.phones[p.ID] = p
	return nil
}
func (r *memPhoneRepo) GetByID(id string) (*entity.Phone, error) { return r.phones[id], nil }
func (r *memPhoneRepo) GetByIMEI(imei string) (*entity.Phone, error) {
	for _, p := range r.phones {
		if p.IMEI == imei {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memPhoneRepo) List() ([]*entity.Phone, error) {
	out := make([]*entity.Phone, 0, len(r.phones))
	for _, p := range r.phones {
		out = append(out, p)
	}
	return out, nil
}
func (r *memPhoneRepo) Update(p *entity.Phone) error {
	r.phones[p.ID] = p
	return nil
}
func (r *memPhoneRepo) Delete(id string) error {
	delete(r.phones, id)
	return nil
}

func TestPhoneCreate_IMEIDuplicado(t *testing.T) {
	uc := NewPhoneUseCase(newMemPhoneRepo())

	_, err := uc.Create(dto.CreatePhoneRequest{Brand: "Apple", Model: "iPhone 12", IMEI: "354442067957212"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePhoneRequest{Brand: "Apple", Model: "iPhone 13", IMEI: "354442067957212"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPhoneCreate_EstadoPorDefectoAvailable(t *testing.T) {
	uc := NewPhoneUseCase(newMemPhoneRepo())

	out, err := uc.Create(dto.CreatePhoneRequest{Brand: "Samsung", Model: "S21", IMEI: "1"})
	require.NoError(t, err)
	assert.Equal(t, entity.PhoneStatusAvailable, out.Status)
}

func TestPhoneUpdate_IMEIInmutable(t *testing.T) {
	repo := newMemPhoneRepo()
	uc := NewPhoneUseCase(repo)

	created, err := uc.Create(dto.CreatePhoneRequest{
		Brand: "Apple", Model: "iPhone 12", IMEI: "354442067957212",
		Price: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	sold := entity.PhoneStatusSold
	newPrice := decimal.NewFromInt(250)
	out, err := uc.Update(created.ID, dto.UpdatePhoneRequest{Status: &sold, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "354442067957212", out.IMEI, "el IMEI nunca cambia después de crear")
	assert.Equal(t, entity.PhoneStatusSold, out.Status)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(250)))
}

func TestPhoneCreate_Invalido(t *testing.T) {
	uc := NewPhoneUseCase(newMemPhoneRepo())

	_, err := uc.Create(dto.CreatePhoneRequest{Brand: "", Model: "x", IMEI: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreatePhoneRequest{Brand: "x", Model: "y", IMEI: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPhoneDelete_Inexistente(t *testing.T) {
	uc := NewPhoneUseCase(newMemPhoneRepo())
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}
