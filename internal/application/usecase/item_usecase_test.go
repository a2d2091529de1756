package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo { return &fakeItemRepo{items: map[string]*entity.Item{}} }

func (r *fakeItemRepo) Create(item *entity.Item) error          { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) { return r.items[id], nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) Update(item *entity.Item) error { r.items[item.ID] = item; return nil }
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
func (r *fakeItemRepo) SearchActive(query string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) Deactivate(id string) error {
	r.items[id].IsActive = false
	return nil
}

type fakeCategoryRepo struct {
	cats map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.cats[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	// Copia: el caso de uso edita sobre lo leído antes de llamar a Update.
	cp := *c
	return &cp, nil
}
func (r *fakeCategoryRepo) Update(c *entity.Category) (bool, error) {
	prev := r.cats[c.ID]
	changed := prev == nil || prev.Name != c.Name || prev.Description != c.Description
	r.cats[c.ID] = c
	return changed, nil
}
func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCategoryRepo) ListActive() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCategoryRepo) Deactivate(id string) error {
	r.cats[id].IsActive = false
	return nil
}

type fakeSupplierRepo struct {
	sups map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.sups[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.sups[id], nil
}
func (r *fakeSupplierRepo) Update(*entity.Supplier) (bool, error)   { return false, nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error)       { return nil, nil }
func (r *fakeSupplierRepo) ListActive() ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Deactivate(string) error                 { return nil }

type itemFixture struct {
	uc       *usecase.ItemUseCase
	itemRepo *fakeItemRepo
	catRepo  *fakeCategoryRepo
	supRepo  *fakeSupplierRepo
}

func newItemFixture() *itemFixture {
	itemRepo := newFakeItemRepo()
	catRepo := &fakeCategoryRepo{cats: map[string]*entity.Category{}}
	supRepo := &fakeSupplierRepo{sups: map[string]*entity.Supplier{}}
	return &itemFixture{
		uc:       usecase.NewItemUseCase(itemRepo, catRepo, supRepo),
		itemRepo: itemRepo,
		catRepo:  catRepo,
		supRepo:  supRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_ResuelveSnapshots(t *testing.T) {
	f := newItemFixture()
	cat := &entity.Category{ID: uuid.New().String(), Name: "Herramientas", IsActive: true}
	sup := &entity.Supplier{ID: uuid.New().String(), Name: "Ferretería Sur", IsActive: true}
	require.NoError(t, f.catRepo.Create(cat))
	require.NoError(t, f.supRepo.Create(sup))

	id, err := f.uc.Create(dto.ItemRequest{
		Name:       "  Martillo  ",
		Price:      "150.50",
		CategoryID: dto.FlexID(cat.ID),
		SupplierID: dto.FlexID(sup.ID),
	})
	require.NoError(t, err)

	item, _ := f.itemRepo.GetByID(id)
	require.NotNil(t, item)
	assert.Equal(t, "Martillo", item.Name, "el nombre llega saneado")
	assert.True(t, item.Price.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, 0, item.Stock, "el stock nace en cero")
	assert.True(t, item.IsActive)
	require.NotNil(t, item.Category)
	assert.Equal(t, "Herramientas", item.Category.Name)
	require.NotNil(t, item.Supplier)
	assert.Equal(t, "Ferretería Sur", item.Supplier.Name)
}

func TestItemCreate_ReferenciaIrresoluble_LimpiaSnapshot(t *testing.T) {
	f := newItemFixture()
	id, err := f.uc.Create(dto.ItemRequest{
		Name:       "Martillo",
		CategoryID: dto.FlexID(uuid.New().String()), // no existe
		SupplierID: dto.FlexID("basura"),            // ni es uuid
	})
	require.NoError(t, err, "una referencia rota no bloquea el alta")

	item, _ := f.itemRepo.GetByID(id)
	assert.Nil(t, item.Category)
	assert.Nil(t, item.Supplier)
}

func TestItemCreate_PrecioInvalido(t *testing.T) {
	f := newItemFixture()
	for _, price := range []string{"abc", "-5"} {
		_, err := f.uc.Create(dto.ItemRequest{Name: "Martillo", Price: dto.FlexPrice(price)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %q debe rechazarse", price)
	}

	// Vacío vale cero.
	id, err := f.uc.Create(dto.ItemRequest{Name: "Martillo"})
	require.NoError(t, err)
	item, _ := f.itemRepo.GetByID(id)
	assert.True(t, item.Price.IsZero())
}

func TestItemUpdate_NoTocaStockNiActivo(t *testing.T) {
	f := newItemFixture()
	item := &entity.Item{
		ID: uuid.New().String(), Name: "Martillo", Price: decimal.NewFromInt(100),
		Stock: 7, IsActive: true, CreatedAt: time.Now(),
	}
	require.NoError(t, f.itemRepo.Create(item))

	require.NoError(t, f.uc.Update(item.ID, dto.ItemRequest{Name: "Mazo", Price: "80"}))

	got, _ := f.itemRepo.GetByID(item.ID)
	assert.Equal(t, "Mazo", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 7, got.Stock, "solo el ledger mueve el stock")
	assert.True(t, got.IsActive)
}

func TestItemUpdate_IDInvalido(t *testing.T) {
	f := newItemFixture()
	assert.ErrorIs(t, f.uc.Update("no-uuid", dto.ItemRequest{Name: "x"}), domain.ErrInvalidID)
}

func TestItemUpdate_Inexistente(t *testing.T) {
	f := newItemFixture()
	assert.ErrorIs(t, f.uc.Update(uuid.New().String(), dto.ItemRequest{Name: "x"}), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestItemList_SnapshotsAusentesMuestranGuion(t *testing.T) {
	f := newItemFixture()
	require.NoError(t, f.itemRepo.Create(&entity.Item{
		ID: uuid.New().String(), Name: "Suelto", Price: decimal.NewFromInt(10),
		IsActive: true, CreatedAt: time.Now(),
	}))

	out, err := f.uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "-", out[0].CategoryName)
	assert.Equal(t, "-", out[0].SupplierName)
}

func TestItemDeactivate_SoloBajaElFlag(t *testing.T) {
	f := newItemFixture()
	item := &entity.Item{
		ID: uuid.New().String(), Name: "Martillo", Price: decimal.NewFromInt(100),
		Stock: 5, IsActive: true, CreatedAt: time.Now(),
	}
	require.NoError(t, f.itemRepo.Create(item))

	require.NoError(t, f.uc.Deactivate(item.ID))
	got, _ := f.itemRepo.GetByID(item.ID)
	assert.False(t, got.IsActive)
	assert.Equal(t, 5, got.Stock, "el soft-delete no toca el stock")
}
