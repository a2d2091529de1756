package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/sanitize"
)

// DestinationUseCase CRUD de destinos con soft-delete.
type DestinationUseCase struct {
	repo repository.DestinationRepository
}

// NewDestinationUseCase construye el caso de uso.
func NewDestinationUseCase(repo repository.DestinationRepository) *DestinationUseCase {
	return &DestinationUseCase{repo: repo}
}

// Create da de alta un destino activo.
func (uc *DestinationUseCase) Create(in dto.ContactRequest) error {
	name := sanitize.Text(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Destination{
		ID:       uuid.New().String(),
		Name:     name,
		Contact:  sanitize.Text(in.Contact),
		Address:  sanitize.Text(in.Address),
		IsActive: true,
	})
}

// List devuelve todos los destinos, incluidos los soft-deleted.
func (uc *DestinationUseCase) List() ([]dto.ContactResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ContactResponse{ID: d.ID, Name: d.Name, Contact: d.Contact, Address: d.Address, IsActive: d.IsActive})
	}
	return out, nil
}

// Get devuelve un destino por id.
func (uc *DestinationUseCase) Get(id string) (*dto.ContactResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ContactResponse{ID: d.ID, Name: d.Name, Contact: d.Contact, Address: d.Address, IsActive: d.IsActive}, nil
}

// Update edita los datos del destino; updated=false si nada cambió.
func (uc *DestinationUseCase) Update(id string, in dto.ContactRequest) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, domain.ErrInvalidID
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if d == nil {
		return false, domain.ErrNotFound
	}
	d.Name = sanitize.Text(in.Name)
	d.Contact = sanitize.Text(in.Contact)
	d.Address = sanitize.Text(in.Address)
	return uc.repo.Update(d)
}

// Delete soft-delete del destino.
func (uc *DestinationUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return uc.repo.Deactivate(id)
}

// Options devuelve {id, nombre} de destinos activos para dropdowns.
func (uc *DestinationUseCase) Options() ([]dto.OptionDTO, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionDTO, 0, len(list))
	for _, d := range list {
		out = append(out, dto.OptionDTO{ID: d.ID, Value: d.Name})
	}
	return out, nil
}
