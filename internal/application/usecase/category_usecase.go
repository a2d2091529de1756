package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/sanitize"
)

// CategoryUseCase CRUD de categorías con soft-delete.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría activa.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) error {
	name := sanitize.Text(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: sanitize.Text(in.Description),
		IsActive:    true,
	})
}

// List devuelve todas las categorías, incluidas las soft-deleted.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Get devuelve una categoría por id.
func (uc *CategoryUseCase) Get(id string) (*dto.CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Update edita nombre/descripción. Devuelve updated=false si nada cambió
// (el handler responde soft-fail, no error).
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, domain.ErrInvalidID
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, domain.ErrNotFound
	}
	c.Name = sanitize.Text(in.Name)
	c.Description = sanitize.Text(in.Description)
	return uc.repo.Update(c)
}

// Delete soft-delete: is_active=false, la fila no se borra nunca.
func (uc *CategoryUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return uc.repo.Deactivate(id)
}

// Options devuelve {id, nombre} de las categorías activas para dropdowns.
func (uc *CategoryUseCase) Options() ([]dto.OptionDTO, error) {
	cats, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.OptionDTO{ID: c.ID, Value: c.Name})
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	active := 0
	if c.IsActive {
		active = 1
	}
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, IsActive: active}
}
