package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `INSERT INTO suppliers (id, name, contact, address, is_active) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.Contact, s.Address, s.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor (nil si no existe).
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, contact, address, is_active FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Contact, &s.Address, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update edita los datos de contacto. updated=false si la fila no cambió.
func (r *SupplierRepo) Update(s *entity.Supplier) (bool, error) {
	query := `
		UPDATE suppliers SET name = $2, contact = $3, address = $4
		WHERE id = $1 AND (name IS DISTINCT FROM $2 OR contact IS DISTINCT FROM $3 OR address IS DISTINCT FROM $4)`
	cmd, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.Contact, s.Address)
	if err != nil {
		return false, fmt.Errorf("update supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todos los proveedores, incluidos los soft-deleted.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	return r.list(`SELECT id, name, contact, address, is_active FROM suppliers ORDER BY name`)
}

// ListActive devuelve solo los proveedores activos (dropdowns).
func (r *SupplierRepo) ListActive() ([]*entity.Supplier, error) {
	return r.list(`SELECT id, name, contact, address, is_active FROM suppliers WHERE is_active ORDER BY name`)
}

func (r *SupplierRepo) list(query string) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Address, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate soft-delete del proveedor.
func (r *SupplierRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate supplier: %w", err)
	}
	return nil
}
