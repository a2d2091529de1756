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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx). Los snapshots de categoría/proveedor se guardan
// desnormalizados en columnas propias.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, price, category_id, category_name, supplier_id, supplier_name, stock, is_active, created_at`

// Create persiste un ítem nuevo. El stock nace en 0.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, price, category_id, category_name, supplier_id, supplier_name, stock, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	catID, catName := refColumns(item.Category)
	supID, supName := refColumns(item.Supplier)
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Price, catID, catName, supID, supName,
		item.Stock, item.IsActive, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID (nil si no existe).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el ítem bloqueando su fila (SELECT FOR UPDATE).
// Serializa entradas, salidas, cancelaciones y devoluciones sobre el mismo ítem.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.get(id, true)
}

func (r *ItemRepo) get(id string, forUpdate bool) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update edita nombre, precio y snapshots. No toca stock ni is_active.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, price = $3, category_id = $4, category_name = $5, supplier_id = $6, supplier_name = $7
		WHERE id = $1`
	catID, catName := refColumns(item.Category)
	supID, supName := refColumns(item.Supplier)
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Price, catID, catName, supID, supName,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// AdjustStock incrementa o decrementa el contador desnormalizado.
// Siempre se llama con la fila ya bloqueada por GetForUpdate en la misma tx.
func (r *ItemRepo) AdjustStock(id string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET stock = stock + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// List devuelve todos los ítems, más recientes primero.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// SearchActive busca ítems activos por nombre (ILIKE) para el buscador de salidas.
func (r *ItemRepo) SearchActive(nameQuery string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE is_active AND name ILIKE '%' || $1 || '%' ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// Deactivate soft-delete: solo baja el flag, no edita nada más.
func (r *ItemRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var catID, catName, supID, supName *string
	err := row.Scan(&it.ID, &it.Name, &it.Price, &catID, &catName, &supID, &supName,
		&it.Stock, &it.IsActive, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		it.Category = &entity.Ref{ID: *catID, Name: deref(catName)}
	}
	if supID != nil {
		it.Supplier = &entity.Ref{ID: *supID, Name: deref(supName)}
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func refColumns(ref *entity.Ref) (id, name *string) {
	if ref == nil {
		return nil, nil
	}
	return &ref.ID, &ref.Name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
