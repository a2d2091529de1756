package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de lectura del dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountItems total de ítems registrados (activos e inactivos).
func (r *AnalyticsRepo) CountItems() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// CountTransactionsOnDate transacciones cuyo timestamp empieza con el prefijo
// de fecha "DD-MM-YYYY", sin filtrar por estado.
func (r *AnalyticsRepo) CountTransactionsOnDate(datePrefix string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE ts LIKE $1 || '%'`, datePrefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions on date: %w", err)
	}
	return n, nil
}

// StockSums suma entradas y salidas por ítem sobre todo el ledger,
// sin distinguir estado de la transacción.
func (r *AnalyticsRepo) StockSums() ([]repository.StockSum, error) {
	query := `
		SELECT item_id,
		       COALESCE(SUM(CASE WHEN type = 'in'  THEN quantity ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN type = 'out' THEN quantity ELSE 0 END), 0)
		FROM transactions
		WHERE item_id <> ''
		GROUP BY item_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock sums: %w", err)
	}
	defer rows.Close()
	var sums []repository.StockSum
	for rows.Next() {
		var s repository.StockSum
		if err := rows.Scan(&s.ItemID, &s.TotalIn, &s.TotalOut); err != nil {
			return nil, fmt.Errorf("scan stock sum: %w", err)
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// ActiveTransactionsByDate agrupa las transacciones activas por el día del
// timestamp (prefijo "DD-MM-YYYY"), en orden cronológico.
func (r *AnalyticsRepo) ActiveTransactionsByDate() ([]repository.DateCount, error) {
	query := `
		SELECT split_part(ts, ' ', 1) AS day, COUNT(*)
		FROM transactions
		WHERE status = 'active'
		GROUP BY day
		ORDER BY to_date(day, 'DD-MM-YYYY')`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("transactions by date: %w", err)
	}
	defer rows.Close()
	var counts []repository.DateCount
	for rows.Next() {
		var dc repository.DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan date count: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// LowStockItems ítems cuyo contador desnormalizado está bajo el umbral. El
// widget no filtra por is_active: un ítem desactivado con stock bajo sigue
// siendo visible en el dashboard.
func (r *AnalyticsRepo) LowStockItems(threshold int) ([]repository.LowStockItem, error) {
	query := `
		SELECT name, stock, COALESCE(supplier_name, '-')
		FROM items
		WHERE stock < $1
		ORDER BY stock ASC, name`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.Name, &it.Stock, &it.Supplier); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
