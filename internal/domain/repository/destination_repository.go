package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// DestinationRepository puerto de persistencia para Destination (soft-delete).
type DestinationRepository interface {
	Create(d *entity.Destination) error
	GetByID(id string) (*entity.Destination, error)
	Update(d *entity.Destination) (updated bool, err error)
	List() ([]*entity.Destination, error)
	ListActive() ([]*entity.Destination, error)
	Deactivate(id string) error
}
