package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Category.
// Delete es soft-delete: marca is_active=false, nunca borra la fila.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(c *entity.Category) (updated bool, err error)
	List() ([]*entity.Category, error)
	ListActive() ([]*entity.Category, error)
	Deactivate(id string) error
}
