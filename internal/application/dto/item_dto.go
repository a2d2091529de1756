package dto

// ItemRequest alta/edición de ítem. CategoryID/SupplierID vacíos limpian el
// snapshot correspondiente.
type ItemRequest struct {
	Name       string    `json:"name" validate:"required,max=255"`
	Price      FlexPrice `json:"price"` // string o número JSON; vacío = 0
	CategoryID FlexID    `json:"category_id"`
	SupplierID FlexID    `json:"supplier_id"`
}

// ItemResponse ítem serializado para el listado.
type ItemResponse struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
	SupplierName string  `json:"supplier_name"`
	IsActive     bool    `json:"is_active"`
}

// ItemOptionDTO resultado del buscador de ítems del formulario de salidas.
type ItemOptionDTO struct {
	ID    string  `json:"id"`
	Value string  `json:"value"`
	Price float64 `json:"price"`
}

// ItemHistoryEntry fila del historial de movimientos de un ítem.
type ItemHistoryEntry struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"` // "Entrada" | "Salida"
	Quantity    int    `json:"quantity"`
	DetailsName string `json:"details_name"`
}
