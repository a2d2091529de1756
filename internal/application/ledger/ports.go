package ledger

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append al ledger y la
// actualización del contador de stock se observen juntos o no se observen:
// cierra la carrera de sobreventa (dos salidas concurrentes del mismo ítem
// se serializan en el FOR UPDATE de la fila del ítem).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
		destRepo repository.DestinationRepository,
	) error) error
}
