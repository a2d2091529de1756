package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// TransactionRepository puerto del ledger append-only.
// No existe Update genérico: las únicas mutaciones posibles son las
// transiciones terminales de status, cada una con su timestamp.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	GetForUpdate(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	ListByItem(itemID string) ([]*entity.Transaction, error)
	MarkCanceled(id string, at time.Time) error
	MarkReturned(id string, at time.Time) error
}
