package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// GetForUpdate y AdjustStock solo tienen sentido dentro de una transacción
// del TxRunner: bloquean la fila del ítem para serializar el par
// append-al-ledger + actualización-del-contador.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	AdjustStock(id string, delta int) error
	List() ([]*entity.Item, error)
	SearchActive(nameQuery string) ([]*entity.Item, error)
	Deactivate(id string) error
}
