package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ref snapshot inmutable {id, nombre} de una categoría o proveedor, tomado al
// escribir el ítem. Renombrar la categoría después no toca los ítems que la
// referencian.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item representa un ítem del almacén.
//
// Stock es un contador desnormalizado: la fuente de verdad es el ledger de
// transacciones y el contador se reconstruye transaccionalmente en cada
// append/cancel/return (misma transacción SQL).
type Item struct {
	ID        string
	Name      string
	Price     decimal.Decimal // >= 0
	Category  *Ref            // snapshot, nil si no tiene
	Supplier  *Ref            // snapshot, nil si no tiene
	Stock     int
	IsActive  bool
	CreatedAt time.Time
}
