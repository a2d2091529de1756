package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/sanitize"
)

// SupplierUseCase CRUD de proveedores con soft-delete.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create da de alta un proveedor activo.
func (uc *SupplierUseCase) Create(in dto.ContactRequest) error {
	name := sanitize.Text(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Supplier{
		ID:       uuid.New().String(),
		Name:     name,
		Contact:  sanitize.Text(in.Contact),
		Address:  sanitize.Text(in.Address),
		IsActive: true,
	})
}

// List devuelve todos los proveedores, incluidos los soft-deleted.
func (uc *SupplierUseCase) List() ([]dto.ContactResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ContactResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Address: s.Address, IsActive: s.IsActive})
	}
	return out, nil
}

// Get devuelve un proveedor por id.
func (uc *SupplierUseCase) Get(id string) (*dto.ContactResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ContactResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Address: s.Address, IsActive: s.IsActive}, nil
}

// Update edita los datos de contacto; updated=false si nada cambió.
func (uc *SupplierUseCase) Update(id string, in dto.ContactRequest) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, domain.ErrInvalidID
	}
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, domain.ErrNotFound
	}
	s.Name = sanitize.Text(in.Name)
	s.Contact = sanitize.Text(in.Contact)
	s.Address = sanitize.Text(in.Address)
	return uc.repo.Update(s)
}

// Delete soft-delete del proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return uc.repo.Deactivate(id)
}

// Options devuelve {id, nombre} de proveedores activos para dropdowns.
func (uc *SupplierUseCase) Options() ([]dto.OptionDTO, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.OptionDTO{ID: s.ID, Value: s.Name})
	}
	return out, nil
}
