package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/application/ledger"
	"github.com/phonefixpro/phonefix-api/internal/domain"
	"github.com/phonefixpro/phonefix-api/internal/domain/entity"
	"github.com/phonefixpro/phonefix-api/internal/domain/inventory"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

type memReportRepo struct {
	rows    []repository.InventoryStatusRow
	summary repository.InventorySummary

	customers int
	items     int
	sales     int
	revenue   decimal.Decimal
	recent    []repository.RecentSaleRow
}

func (r *memReportRepo) ListInventory(context.Context) ([]repository.InventoryStatusRow, error) {
	return r.rows, nil
}
func (r *memReportRepo) ListLowStock(context.Context) ([]repository.InventoryStatusRow, error) {
	var out []repository.InventoryStatusRow
	for _, row := range r.rows {
		if row.Quantity <= row.MinStockLevel {
			out = append(out, row)
		}
	}
	return out, nil
}
func (r *memReportRepo) GetInventorySummary(context.Context) (*repository.InventorySummary, error) {
	s := r.summary
	return &s, nil
}
func (r *memReportRepo) CountCustomers(context.Context) (int, error) { return r.customers, nil }
func (r *memReportRepo) CountItems(context.Context) (int, error)     { return r.items, nil }
func (r *memReportRepo) GetSalesStats(context.Context) (int, decimal.Decimal, error) {
	return r.sales, r.revenue, nil
}
func (r *memReportRepo) ListRecentSales(_ context.Context, limit int) ([]repository.RecentSaleRow, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake transaccional
//
// stockStore emula el backing store compartido entre la reposición y el ledger
// de ventas: el runner toma el mutex durante toda la tx y hace snapshot/rollback
// si fn falla. Instrumentado: cuenta las lecturas FOR UPDATE y registra la
// cantidad del item observado tras cada commit, para verificar que ninguna
// escritura se pierde entre transacciones concurrentes.
// ──────────────────────────────────────────────────────────────────────────────

type stockStore struct {
	mu    sync.Mutex
	items map[string]*entity.Item
	inv   map[string]*entity.InventoryRecord // key: item_id
	sales map[string]*entity.Sale

	watchItemID    string
	forUpdateReads int
	commits        []int // cantidad de watchItemID tras cada tx confirmada
}

func newStockStore() *stockStore {
	return &stockStore{
		items: make(map[string]*entity.Item),
		inv:   make(map[string]*entity.InventoryRecord),
		sales: make(map[string]*entity.Sale),
	}
}

func (s *stockStore) addItem(id string, stock, minLevel int) {
	s.items[id] = &entity.Item{ID: id, Name: "item-" + id, Price: decimal.NewFromInt(10)}
	s.inv[id] = &entity.InventoryRecord{ID: "inv-" + id, ItemID: id, Quantity: stock, MinStockLevel: minLevel}
}

func (s *stockStore) snapshot() (map[string]*entity.InventoryRecord, map[string]*entity.Sale) {
	inv := make(map[string]*entity.InventoryRecord, len(s.inv))
	for k, v := range s.inv {
		cp := *v
		inv[k] = &cp
	}
	sales := make(map[string]*entity.Sale, len(s.sales))
	for k, v := range s.sales {
		cp := *v
		sales[k] = &cp
	}
	return inv, sales
}

type stockTxRunner struct{ s *stockStore }

func (r *stockTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	invRepo repository.InventoryRepository,
	itemRepo repository.ItemRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	invSnap, salesSnap := r.s.snapshot()
	err := fn(&stockSaleRepo{s: r.s}, &stockInvRepo{s: r.s}, &stockItemRepo{s: r.s})
	if err != nil {
		r.s.inv = invSnap
		r.s.sales = salesSnap
		return err
	}
	if rec := r.s.inv[r.s.watchItemID]; rec != nil {
		r.s.commits = append(r.s.commits, rec.Quantity)
	}
	return nil
}

type stockItemRepo struct{ s *stockStore }

func (r *stockItemRepo) Create(*entity.Item) error                    { return nil }
func (r *stockItemRepo) Update(*entity.Item) error                    { return nil }
func (r *stockItemRepo) Delete(string) error                          { return nil }
func (r *stockItemRepo) List() ([]*entity.Item, error)                { return nil, nil }
func (r *stockItemRepo) ListByCategory(string) ([]*entity.Item, error) { return nil, nil }
func (r *stockItemRepo) GetBySKU(string) (*entity.Item, error)        { return nil, nil }
func (r *stockItemRepo) GetByID(id string) (*entity.Item, error)      { return r.s.items[id], nil }

type stockInvRepo struct{ s *stockStore }

func (r *stockInvRepo) Create(rec *entity.InventoryRecord) error {
	r.s.inv[rec.ItemID] = rec
	return nil
}
func (r *stockInvRepo) GetByItemID(itemID string) (*entity.InventoryRecord, error) {
	return r.s.inv[itemID], nil
}
func (r *stockInvRepo) GetByItemIDForUpdate(itemID string) (*entity.InventoryRecord, error) {
	r.s.forUpdateReads++
	return r.s.inv[itemID], nil
}
func (r *stockInvRepo) Update(rec *entity.InventoryRecord) error {
	r.s.inv[rec.ItemID] = rec
	return nil
}

type stockSaleRepo struct{ s *stockStore }

func (r *stockSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales[sale.ID] = sale
	return nil
}
func (r *stockSaleRepo) GetByID(id string) (*entity.Sale, error)          { return r.s.sales[id], nil }
func (r *stockSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *stockSaleRepo) Update(sale *entity.Sale) error {
	r.s.sales[sale.ID] = sale
	return nil
}
func (r *stockSaleRepo) Delete(id string) error {
	delete(r.s.sales, id)
	return nil
}
func (r *stockSaleRepo) GetWithRefs(string) (*repository.SaleWithRefs, error) { return nil, nil }
func (r *stockSaleRepo) List() ([]repository.SaleWithRefs, error)             { return nil, nil }
func (r *stockSaleRepo) ListByDateRange(time.Time, time.Time) ([]repository.SaleWithRefs, error) {
	return nil, nil
}

func newInventoryUC(report *memReportRepo, store *stockStore) *InventoryUseCase {
	return NewInventoryUseCase(report, &stockTxRunner{s: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas
// ──────────────────────────────────────────────────────────────────────────────

func invRow(itemID string, qty, min int) repository.InventoryStatusRow {
	return repository.InventoryStatusRow{
		ItemID: itemID, ItemName: "item-" + itemID,
		Quantity: qty, MinStockLevel: min, LastUpdated: time.Now(),
	}
}

func TestInventoryList_DerivaEstadoPorFila(t *testing.T) {
	report := &memReportRepo{rows: []repository.InventoryStatusRow{
		invRow("a", 50, 10), // In Stock
		invRow("b", 5, 10),  // Low Stock
		invRow("c", 0, 10),  // Out of Stock
	}}
	uc := newInventoryUC(report, newStockStore())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, inventory.StatusInStock, out[0].StockStatus)
	assert.Equal(t, inventory.StatusLowStock, out[1].StockStatus)
	assert.Equal(t, inventory.StatusOutOfStock, out[2].StockStatus)
}

func TestInventoryListLowStock_IncluyeAgotados(t *testing.T) {
	report := &memReportRepo{rows: []repository.InventoryStatusRow{
		invRow("a", 50, 10),
		invRow("b", 10, 10), // en el borde: low
		invRow("c", 0, 10),
	}}
	uc := newInventoryUC(report, newStockStore())

	out, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ItemID)
	assert.Equal(t, "c", out[1].ItemID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUpdateLevel_Reposicion(t *testing.T) {
	store := newStockStore()
	store.addItem("a", 2, 10)
	uc := newInventoryUC(&memReportRepo{}, store)

	qty := 30
	out, err := uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Quantity)
	assert.Equal(t, 10, out.MinStockLevel, "el umbral no cambia si no se envía")
	assert.Equal(t, inventory.StatusInStock, out.StockStatus)
}

func TestInventoryUpdateLevel_LeeConBloqueoDentroDeTx(t *testing.T) {
	store := newStockStore()
	store.addItem("a", 2, 10)
	store.watchItemID = "a"
	uc := newInventoryUC(&memReportRepo{}, store)

	qty := 30
	_, err := uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 1, store.forUpdateReads, "la fila debe leerse con FOR UPDATE, no con una lectura suelta")
	assert.Equal(t, []int{30}, store.commits, "la escritura debe confirmarse dentro del runner")
}

func TestInventoryUpdateLevel_SoloUmbral(t *testing.T) {
	store := newStockStore()
	store.addItem("a", 8, 5)
	uc := newInventoryUC(&memReportRepo{}, store)

	min := 20
	out, err := uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{MinStockLevel: &min})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantity, "la cantidad no cambia si no se envía")
	assert.Equal(t, 20, out.MinStockLevel)
	assert.Equal(t, inventory.StatusLowStock, out.StockStatus, "con el nuevo umbral la fila queda en low")
}

func TestInventoryUpdateLevel_Invalido(t *testing.T) {
	store := newStockStore()
	store.addItem("a", 8, 5)
	uc := newInventoryUC(&memReportRepo{}, store)

	_, err := uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin campos no hay nada que actualizar")

	neg := -1
	_, err = uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUpdateLevel_ItemSinInventario(t *testing.T) {
	uc := newInventoryUC(&memReportRepo{}, newStockStore())

	qty := 5
	_, err := uc.UpdateLevel(context.Background(), "nope", dto.UpdateInventoryLevelRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La reposición y las ventas comparten el mismo runner: cada tx confirmada debe
// partir del estado que dejó la anterior. Una reposición fija la cantidad en un
// valor absoluto y cada venta resta 1; si la reposición leyera fuera de la tx,
// pisaría los descuentos de las ventas que se colaron entre su lectura y su
// escritura y la reconstrucción del historial no cuadraría con el estado final.
func TestInventoryUpdateLevel_NoPisaVentasConcurrentes(t *testing.T) {
	const (
		initialStock = 100
		restockTo    = 200
		numSales     = 50
	)

	store := newStockStore()
	store.addItem("a", initialStock, 10)
	store.watchItemID = "a"
	runner := &stockTxRunner{s: store}

	uc := NewInventoryUseCase(&memReportRepo{}, runner)
	l := ledger.NewSaleLedger(runner, &stockItemRepo{s: store})

	var wg sync.WaitGroup
	saleErrs := make(chan error, numSales)
	for i := 0; i < numSales; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.RecordSale(context.Background(), ledger.SaleInput{
				ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(10),
			})
			saleErrs <- err
		}()
	}
	restockErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		qty := restockTo
		_, err := uc.UpdateLevel(context.Background(), "a", dto.UpdateInventoryLevelRequest{Quantity: &qty})
		restockErr <- err
	}()
	wg.Wait()
	close(saleErrs)

	require.NoError(t, <-restockErr)
	for err := range saleErrs {
		require.NoError(t, err, "con este stock ninguna venta debe fallar")
	}

	// Reconstruir el historial confirmado: cada transición es o bien una venta
	// (resta 1) o la reposición (fija restockTo). El estado final debe ser
	// exactamente el resultado de esa secuencia: nada se pierde ni se pisa.
	require.Len(t, store.commits, numSales+1)
	prev := initialStock
	salesSeen, restocksSeen := 0, 0
	for _, q := range store.commits {
		switch {
		case q == prev-1:
			salesSeen++
		case q == restockTo:
			restocksSeen++
		default:
			t.Fatalf("transición de stock inconsistente: %d → %d", prev, q)
		}
		prev = q
	}
	assert.Equal(t, numSales, salesSeen)
	assert.Equal(t, 1, restocksSeen)
	assert.Equal(t, prev, store.inv["a"].Quantity, "el stock final debe coincidir con la última tx confirmada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_AgregaTodasLasFuentes(t *testing.T) {
	name := "Cambio de pantalla"
	report := &memReportRepo{
		customers: 12,
		items:     7,
		sales:     40,
		revenue:   decimal.NewFromFloat(1234.50),
		summary:   repository.InventorySummary{TotalItems: 7, InStock: 4, LowStock: 2, OutOfStock: 1},
		recent: []repository.RecentSaleRow{
			{SaleID: "s1", ItemName: &name, Quantity: 1, TotalAmount: decimal.NewFromInt(100), SaleDate: time.Now()},
		},
	}
	uc := NewDashboardUseCase(report)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, out.TotalCustomers)
	assert.Equal(t, 7, out.TotalItems)
	assert.Equal(t, 40, out.TotalSales)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromFloat(1234.50)))
	assert.Equal(t, 3, out.LowStockItems, "low + out of stock")
	require.Len(t, out.RecentSales, 1)
	assert.Equal(t, "s1", out.RecentSales[0].ID)
}
