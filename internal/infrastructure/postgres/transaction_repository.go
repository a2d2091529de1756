package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). La tabla es append-only: las únicas actualizaciones tocan
// status y su timestamp terminal.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txColumns = `id, item_id, item_name, type, quantity, cost, supplier_name, destination_id, destination_name, ts, status, performed_by, canceled_at, returned_at`

// Create appendea un evento al ledger.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, item_id, item_name, type, quantity, cost, supplier_name, destination_id, destination_name, ts, status, performed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	performedBy := (*string)(nil)
	if tx.PerformedBy != "" {
		performedBy = &tx.PerformedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ItemID, tx.ItemName, tx.Type, tx.Quantity, tx.Cost,
		tx.SupplierName, tx.DestinationID, tx.DestinationName,
		tx.Timestamp, tx.Status, performedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción (nil si no existe).
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la transacción bloqueando la fila: el chequeo de
// status y la transición terminal no corren carreras entre cancel y return.
func (r *TransactionRepo) GetForUpdate(id string) (*entity.Transaction, error) {
	return r.get(id, true)
}

func (r *TransactionRepo) get(id string, forUpdate bool) (*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List devuelve el ledger completo, eventos más recientes primero.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions ORDER BY created_seq DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByItem devuelve los eventos de un ítem, más recientes primero.
func (r *TransactionRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE item_id = $1 ORDER BY created_seq DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by item: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// MarkCanceled transición terminal active→canceled con su timestamp.
func (r *TransactionRepo) MarkCanceled(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET status = $2, canceled_at = $3 WHERE id = $1`,
		id, entity.TxStatusCanceled, at)
	if err != nil {
		return fmt.Errorf("mark canceled: %w", err)
	}
	return nil
}

// MarkReturned transición terminal active→returned con su timestamp.
func (r *TransactionRepo) MarkReturned(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET status = $2, returned_at = $3 WHERE id = $1`,
		id, entity.TxStatusReturned, at)
	if err != nil {
		return fmt.Errorf("mark returned: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var performedBy *string
	err := row.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.Type, &t.Quantity, &t.Cost,
		&t.SupplierName, &t.DestinationID, &t.DestinationName, &t.Timestamp,
		&t.Status, &performedBy, &t.CanceledAt, &t.ReturnedAt)
	if err != nil {
		return nil, err
	}
	t.PerformedBy = deref(performedBy)
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
