package repository

// StockSum agregado in-out del ledger para un ítem.
type StockSum struct {
	ItemID   string
	TotalIn  int
	TotalOut int
}

// Derived stock derivado del ledger para el ítem.
func (s StockSum) Derived() int { return s.TotalIn - s.TotalOut }

// DateCount transacciones activas por fecha (prefijo del timestamp).
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LowStockItem fila del widget de stock bajo (contador desnormalizado).
type LowStockItem struct {
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	Supplier string `json:"supplier"`
}

// AnalyticsRepository consultas read-only del dashboard. Recalcula desde el
// ledger en lugar de confiar en el contador, salvo LowStockItems que expone
// el contador desnormalizado a propósito.
type AnalyticsRepository interface {
	CountItems() (int, error)
	CountTransactionsOnDate(datePrefix string) (int, error)
	StockSums() ([]StockSum, error)
	ActiveTransactionsByDate() ([]DateCount, error)
	LowStockItems(threshold int) ([]LowStockItem, error)
}
