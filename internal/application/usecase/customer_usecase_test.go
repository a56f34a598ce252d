package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
)

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.customers[id], nil }
func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *memCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

func seedCustomers(t *testing.T, uc *CustomerUseCase) {
	t.Helper()
	for _, in := range []dto.CreateCustomerRequest{
		{FirstName: "José", LastName: "Pérez", Email: "jose@example.com", Phone: "555-0101", Product: "iPhone 12"},
		{FirstName: "Maria", LastName: "García", Email: "maria@example.com", Phone: "555-0202", Product: "Galaxy S21"},
		{FirstName: "Ana", LastName: "Muñoz", Email: "ana@example.com", Phone: "555-0303", Product: "Xiaomi Redmi"},
	} {
		_, err := uc.Create(in)
		require.NoError(t, err)
	}
}

// La búsqueda debe ignorar mayúsculas y acentos: "perez" encuentra a "Pérez".
func TestCustomerList_BusquedaInsensibleAAcentos(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())
	seedCustomers(t, uc)

	out, err := uc.List("perez")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "José", out[0].FirstName)

	// También a la inversa: query con acento contra dato sin acento
	out, err = uc.List("maría")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Maria", out[0].FirstName)
}

func TestCustomerList_BuscaPorEquipoYTelefono(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())
	seedCustomers(t, uc)

	out, err := uc.List("galaxy")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Maria", out[0].FirstName)

	out, err = uc.List("555-0303")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].FirstName)
}

func TestCustomerList_SinQueryDevuelveTodos(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())
	seedCustomers(t, uc)

	out, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestCustomerUpdate_CamposParciales(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewCustomerUseCase(repo)

	created, err := uc.Create(dto.CreateCustomerRequest{FirstName: "Ana", LastName: "Muñoz", Phone: "555-1"})
	require.NoError(t, err)

	newPhone := "555-2"
	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, "555-2", out.Phone)
	assert.Equal(t, "Ana", out.FirstName, "los campos no enviados no cambian")
}
