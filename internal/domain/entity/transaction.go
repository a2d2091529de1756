package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	TxTypeIn  = "in"
	TxTypeOut = "out"
)

// Estados del ciclo de vida. active → canceled | returned es una transición
// de un solo sentido y exactamente una vez; canceled y returned son terminales.
const (
	TxStatusActive   = "active"
	TxStatusCanceled = "canceled"
	TxStatusReturned = "returned"
)

// TimestampLayout formato del timestamp persistido como string, en el huso
// fijo UTC+7 del almacén (el prefijo de fecha agrupa el chart del dashboard).
const TimestampLayout = "02-01-2006 15:04"

// DateLayout prefijo de fecha del timestamp.
const DateLayout = "02-01-2006"

// WarehouseZone huso horario fijo UTC+7 en el que se formatean los timestamps.
var WarehouseZone = time.FixedZone("UTC+7", 7*60*60)

// FormatTimestamp formatea un instante con el layout y huso del ledger.
func FormatTimestamp(t time.Time) string {
	return t.In(WarehouseZone).Format(TimestampLayout)
}

// Transaction es un evento del ledger append-only de movimientos de stock.
// Nunca se actualizan sus cantidades; solo status pasa a canceled/returned.
type Transaction struct {
	ID              string
	ItemID          string
	ItemName        string // snapshot al momento de la operación
	Type            string // in | out
	Quantity        int    // > 0 siempre; el signo lo da Type
	Cost            decimal.Decimal // price × quantity al momento de la operación
	SupplierName    string  // entradas: snapshot del proveedor del ítem ("-" si no hay)
	DestinationID   *string // salidas: nil si no se resolvió destino
	DestinationName string  // salidas: snapshot ("-" si no se resolvió)
	Timestamp       string  // TimestampLayout en WarehouseZone
	Status          string  // active | canceled | returned
	PerformedBy     string  // salidas: username del operador
	CanceledAt      *time.Time
	ReturnedAt      *time.Time
}

// Terminal responde si la transacción ya no admite cancel ni return.
func (t *Transaction) Terminal() bool {
	return t.Status == TxStatusCanceled || t.Status == TxStatusReturned
}
