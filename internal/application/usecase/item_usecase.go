package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/sanitize"
)

// ItemUseCase CRUD de ítems del catálogo. El stock no se toca aquí: solo el
// ledger lo mueve.
type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create da de alta un ítem con snapshots {id, nombre} de categoría y
// proveedor resueltos en este momento: renombrarlos después no afecta al ítem.
func (uc *ItemUseCase) Create(in dto.ItemRequest) (string, error) {
	name := sanitize.Text(in.Name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	price, err := parsePrice(in.Price.String())
	if err != nil {
		return "", err
	}

	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Category:  uc.resolveCategory(in.CategoryID),
		Supplier:  uc.resolveSupplier(in.SupplierID),
		Stock:     0, // el stock nace en cero y solo lo mueve el ledger
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return "", err
	}
	return item.ID, nil
}

// Update edita nombre, precio y snapshots. Un id de categoría/proveedor
// irresoluble limpia el snapshot (mismo contrato que el alta).
func (uc *ItemUseCase) Update(id string, in dto.ItemRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if name := sanitize.Text(in.Name); name != "" {
		item.Name = name
	}
	if !in.Price.Empty() {
		price, err := parsePrice(in.Price.String())
		if err != nil {
			return err
		}
		item.Price = price
	}
	item.Category = uc.resolveCategory(in.CategoryID)
	item.Supplier = uc.resolveSupplier(in.SupplierID)
	return uc.itemRepo.Update(item)
}

// List devuelve todos los ítems (activos e inactivos) para el listado.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		price, _ := it.Price.Float64()
		categoryName, supplierName := "-", "-"
		if it.Category != nil {
			categoryName = it.Category.Name
		}
		if it.Supplier != nil {
			supplierName = it.Supplier.Name
		}
		out = append(out, dto.ItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			Stock:        it.Stock,
			Price:        price,
			CategoryName: categoryName,
			SupplierName: supplierName,
			IsActive:     it.IsActive,
		})
	}
	return out, nil
}

// Search busca ítems activos por nombre para el formulario de salidas.
func (uc *ItemUseCase) Search(query string) ([]dto.ItemOptionDTO, error) {
	items, err := uc.itemRepo.SearchActive(sanitize.Text(query))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemOptionDTO, 0, len(items))
	for _, it := range items {
		price, _ := it.Price.Float64()
		out = append(out, dto.ItemOptionDTO{ID: it.ID, Value: it.Name, Price: price})
	}
	return out, nil
}

// Deactivate marca el ítem como inactivo (soft-delete). Solo cambia el flag.
func (uc *ItemUseCase) Deactivate(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return uc.itemRepo.Deactivate(id)
}

func (uc *ItemUseCase) resolveCategory(raw dto.FlexID) *entity.Ref {
	id := raw.String()
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil || c == nil {
		return nil
	}
	return &entity.Ref{ID: c.ID, Name: c.Name}
}

func (uc *ItemUseCase) resolveSupplier(raw dto.FlexID) *entity.Ref {
	id := raw.String()
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil || s == nil {
		return nil
	}
	return &entity.Ref{ID: s.ID, Name: s.Name}
}

// parsePrice interpreta el precio como decimal; vacío vale 0 y los negativos
// son inválidos.
func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return price, nil
}
