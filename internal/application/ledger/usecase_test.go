package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo { return &fakeItemRepo{items: map[string]*entity.Item{}} }

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.items[id], nil }
func (r *fakeItemRepo) Update(item *entity.Item) error               { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) AdjustStock(id string, delta int) error {
	r.items[id].Stock += delta
	return nil
}
func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}
func (r *fakeItemRepo) SearchActive(string) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Deactivate(id string) error {
	r.items[id].IsActive = false
	return nil
}

type fakeTxRepo struct {
	list []*entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error { r.list = append(r.list, tx); return nil }
func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range r.list {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTxRepo) GetForUpdate(id string) (*entity.Transaction, error) { return r.GetByID(id) }
func (r *fakeTxRepo) List() ([]*entity.Transaction, error)               { return r.list, nil }
func (r *fakeTxRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.list {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTxRepo) MarkCanceled(id string, at time.Time) error {
	t, _ := r.GetByID(id)
	t.Status = entity.TxStatusCanceled
	t.CanceledAt = &at
	return nil
}
func (r *fakeTxRepo) MarkReturned(id string, at time.Time) error {
	t, _ := r.GetByID(id)
	t.Status = entity.TxStatusReturned
	t.ReturnedAt = &at
	return nil
}

type fakeDestRepo struct {
	dests map[string]*entity.Destination
}

func newFakeDestRepo() *fakeDestRepo {
	return &fakeDestRepo{dests: map[string]*entity.Destination{}}
}

func (r *fakeDestRepo) Create(d *entity.Destination) error { r.dests[d.ID] = d; return nil }
func (r *fakeDestRepo) GetByID(id string) (*entity.Destination, error) {
	return r.dests[id], nil
}
func (r *fakeDestRepo) Update(*entity.Destination) (bool, error)   { return false, nil }
func (r *fakeDestRepo) List() ([]*entity.Destination, error)       { return nil, nil }
func (r *fakeDestRepo) ListActive() ([]*entity.Destination, error) { return nil, nil }
func (r *fakeDestRepo) Deactivate(string) error                    { return nil }

// fakeRunner ejecuta fn directamente contra los fakes, sin transacción real.
type fakeRunner struct {
	txRepo   *fakeTxRepo
	itemRepo *fakeItemRepo
	destRepo *fakeDestRepo
}

func (r *fakeRunner) Run(_ context.Context, fn func(
	repository.TransactionRepository,
	repository.ItemRepository,
	repository.DestinationRepository,
) error) error {
	return fn(r.txRepo, r.itemRepo, r.destRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *ledger.UseCase
	txRepo   *fakeTxRepo
	itemRepo *fakeItemRepo
	destRepo *fakeDestRepo
}

func newFixture() *fixture {
	txRepo := &fakeTxRepo{}
	itemRepo := newFakeItemRepo()
	destRepo := newFakeDestRepo()
	runner := &fakeRunner{txRepo: txRepo, itemRepo: itemRepo, destRepo: destRepo}
	return &fixture{
		uc:       ledger.NewUseCase(runner, txRepo, itemRepo, destRepo),
		txRepo:   txRepo,
		itemRepo: itemRepo,
		destRepo: destRepo,
	}
}

// seedItem crea un ítem activo con el precio dado y stock 0.
func (f *fixture) seedItem(t *testing.T, name string, price int64) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     decimal.NewFromInt(price),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.itemRepo.Create(item))
	return item
}

// derivedStock recalcula el stock de un ítem desde los eventos activos del
// ledger; debe coincidir siempre con el contador desnormalizado.
func (f *fixture) derivedStock(itemID string) int {
	total := 0
	for _, tx := range f.txRepo.list {
		if tx.ItemID != itemID || tx.Status != entity.TxStatusActive {
			continue
		}
		if tx.Type == entity.TxTypeIn {
			total += tx.Quantity
		} else {
			total -= tx.Quantity
		}
	}
	return total
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterInbound_SumaStockYCalculaCosto(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)

	result, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Widget", result.ItemName)
	assert.True(t, result.Cost.Equal(decimal.NewFromInt(500)), "costo = precio × cantidad")
	assert.Equal(t, 5, item.Stock)
	assert.Equal(t, f.derivedStock(item.ID), item.Stock, "contador = proyección del ledger")

	require.Len(t, f.txRepo.list, 1)
	ev := f.txRepo.list[0]
	assert.Equal(t, entity.TxTypeIn, ev.Type)
	assert.Equal(t, entity.TxStatusActive, ev.Status)
	assert.Equal(t, "-", ev.SupplierName, "sin proveedor el snapshot queda en guion")
}

func TestRegisterInbound_SnapshotDeProveedor(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Tornillos", 10)
	item.Supplier = &entity.Ref{ID: uuid.New().String(), Name: "Ferretería Sur"}

	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Sur", f.txRepo.list[0].SupplierName)
}

func TestRegisterInbound_ItemInactivo_Rechazado(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	item.IsActive = false

	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrItemInactive)
	assert.Empty(t, f.txRepo.list, "no debe quedar evento en el ledger")
	assert.Equal(t, 0, item.Stock)
}

func TestRegisterInbound_CantidadInvalida(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)

	for _, qty := range []int{0, -3} {
		_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
			ItemID: dto.FlexID(item.ID), Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterInbound_IDNoCanonico_ErrInvalidID(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID("no-es-un-uuid"), Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestRegisterInbound_ItemInexistente_ErrNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(uuid.New().String()), Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterOutbound_DescuentaStock(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, item.Stock)
	assert.Equal(t, f.derivedStock(item.ID), item.Stock)

	require.Len(t, f.txRepo.list, 2)
	out := f.txRepo.list[1]
	assert.Equal(t, entity.TxTypeOut, out.Type)
	assert.Equal(t, "maria", out.PerformedBy)
	assert.Equal(t, "-", out.DestinationName, "sin destino el snapshot queda en guion")
	assert.True(t, out.Cost.Equal(decimal.NewFromInt(300)))
}

func TestRegisterOutbound_StockInsuficiente_SinEfectos(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(3),
	}))

	// Repetir la misma salida excede el stock restante (2 < 3).
	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(3),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, item.Stock, "el stock no debe cambiar")
	assert.Len(t, f.txRepo.list, 2, "no debe quedar evento de la salida rechazada")
}

func TestRegisterOutbound_ItemInactivo_Permitido(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	// El stock que ya está en el almacén sale aunque el ítem esté retirado.
	item.IsActive = false
	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, item.Stock)
}

func TestRegisterOutbound_DestinoResuelto(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	dest := &entity.Destination{ID: uuid.New().String(), Name: "Sucursal Norte", IsActive: true}
	require.NoError(t, f.destRepo.Create(dest))
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID:        dto.FlexID(item.ID),
		DestinationID: dto.FlexID(dest.ID),
		Quantity:      intPtr(2),
	})
	require.NoError(t, err)

	out := f.txRepo.list[1]
	assert.Equal(t, "Sucursal Norte", out.DestinationName)
	require.NotNil(t, out.DestinationID)
	assert.Equal(t, dest.ID, *out.DestinationID)
}

func TestRegisterOutbound_DestinoIrresoluble_NoEsError(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID:        dto.FlexID(item.ID),
		DestinationID: dto.FlexID("destino-roto"),
		Quantity:      intPtr(1),
	})
	require.NoError(t, err, "un destino irresoluble no bloquea la salida")
	assert.Equal(t, "-", f.txRepo.list[1].DestinationName)
}

func TestRegisterOutbound_AliasItemYDestination(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	// El cliente viejo manda `item` en vez de `item_id`.
	err = f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		Item: dto.FlexID(item.ID), Quantity: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelaciones y devoluciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_EntradaRestaElStockQueSumo(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	txID := f.txRepo.list[0].ID

	require.NoError(t, f.uc.Cancel(context.Background(), txID))

	assert.Equal(t, 0, item.Stock)
	assert.Equal(t, entity.TxStatusCanceled, f.txRepo.list[0].Status)
	assert.NotNil(t, f.txRepo.list[0].CanceledAt)
	assert.Equal(t, f.derivedStock(item.ID), item.Stock)
}

func TestCancel_SalidaDevuelveElStock(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(3),
	}))

	require.NoError(t, f.uc.Cancel(context.Background(), f.txRepo.list[1].ID))
	assert.Equal(t, 5, item.Stock)
}

func TestCancel_DobleCancel_ErrAlreadyFinal(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	txID := f.txRepo.list[0].ID

	require.NoError(t, f.uc.Cancel(context.Background(), txID))
	err = f.uc.Cancel(context.Background(), txID)

	assert.ErrorIs(t, err, domain.ErrAlreadyFinal, "la transición terminal ocurre una sola vez")
	assert.Equal(t, 0, item.Stock, "el segundo cancel no debe tocar el stock")
}

func TestReturn_SumaElStockDeVuelta(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(3),
	}))
	outID := f.txRepo.list[1].ID

	require.NoError(t, f.uc.Return(context.Background(), outID))

	assert.Equal(t, 5, item.Stock)
	assert.Equal(t, entity.TxStatusReturned, f.txRepo.list[1].Status)
	assert.NotNil(t, f.txRepo.list[1].ReturnedAt)

	// Segunda devolución de la misma salida: rechazada sin tocar stock.
	err = f.uc.Return(context.Background(), outID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinal)
	assert.Equal(t, 5, item.Stock)
}

func TestReturn_SoloAplicaASalidas(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)

	err = f.uc.Return(context.Background(), f.txRepo.list[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotOutbound)
	assert.Equal(t, 5, item.Stock)
}

func TestReturn_TransaccionInexistente_ErrNotFound(t *testing.T) {
	f := newFixture()
	err := f.uc.Return(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historiales
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_DetalleSegunTipo(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	item.Supplier = &entity.Ref{ID: uuid.New().String(), Name: "Ferretería Sur"}
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(2),
	}))

	rows, err := f.uc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byType := map[string]string{}
	for _, row := range rows {
		byType[row.Type] = row.DetailsName
	}
	assert.Equal(t, "Ferretería Sur", byType[entity.TxTypeIn], "entrada muestra el proveedor")
	assert.Equal(t, "-", byType[entity.TxTypeOut], "salida sin destino muestra guion")
}

func TestItemHistory_TraduceTipos(t *testing.T) {
	f := newFixture()
	item := f.seedItem(t, "Widget", 100)
	_, err := f.uc.RegisterInbound(context.Background(), dto.InboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: 5,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.RegisterOutbound(context.Background(), "maria", dto.OutboundRequest{
		ItemID: dto.FlexID(item.ID), Quantity: intPtr(2),
	}))

	rows, err := f.uc.ItemHistory(context.Background(), item.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	kinds := []string{rows[0].Type, rows[1].Type}
	assert.ElementsMatch(t, []string{"Entrada", "Salida"}, kinds)
}

func TestItemHistory_ItemInexistente_ErrNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ItemHistory(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
