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

var _ repository.DestinationRepository = (*DestinationRepo)(nil)

// DestinationRepo implementación de DestinationRepository sobre PostgreSQL
// (usable con pool o tx: el ledger lo consulta dentro de la transacción de salida).
type DestinationRepo struct {
	q Querier
}

// NewDestinationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDestinationRepository(q Querier) *DestinationRepo {
	return &DestinationRepo{q: q}
}

// Create persiste un destino nuevo.
func (r *DestinationRepo) Create(d *entity.Destination) error {
	query := `INSERT INTO destinations (id, name, contact, address, is_active) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Name, d.Contact, d.Address, d.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

// GetByID obtiene un destino (nil si no existe).
func (r *DestinationRepo) GetByID(id string) (*entity.Destination, error) {
	query := `SELECT id, name, contact, address, is_active FROM destinations WHERE id = $1`
	var d entity.Destination
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Name, &d.Contact, &d.Address, &d.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get destination: %w", err)
	}
	return &d, nil
}

// Update edita los datos del destino. updated=false si la fila no cambió.
func (r *DestinationRepo) Update(d *entity.Destination) (bool, error) {
	query := `
		UPDATE destinations SET name = $2, contact = $3, address = $4
		WHERE id = $1 AND (name IS DISTINCT FROM $2 OR contact IS DISTINCT FROM $3 OR address IS DISTINCT FROM $4)`
	cmd, err := r.q.Exec(context.Background(), query, d.ID, d.Name, d.Contact, d.Address)
	if err != nil {
		return false, fmt.Errorf("update destination: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todos los destinos, incluidos los soft-deleted.
func (r *DestinationRepo) List() ([]*entity.Destination, error) {
	return r.list(`SELECT id, name, contact, address, is_active FROM destinations ORDER BY name`)
}

// ListActive devuelve solo los destinos activos (dropdowns).
func (r *DestinationRepo) ListActive() ([]*entity.Destination, error) {
	return r.list(`SELECT id, name, contact, address, is_active FROM destinations WHERE is_active ORDER BY name`)
}

func (r *DestinationRepo) list(query string) ([]*entity.Destination, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Destination
	for rows.Next() {
		var d entity.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Contact, &d.Address, &d.IsActive); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Deactivate soft-delete del destino.
func (r *DestinationRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE destinations SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate destination: %w", err)
	}
	return nil
}
