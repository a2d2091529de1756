package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para Supplier (soft-delete).
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) (updated bool, err error)
	List() ([]*entity.Supplier, error)
	ListActive() ([]*entity.Supplier, error)
	Deactivate(id string) error
}
