package dto

// InboundRequest entrada de stock (solo admin).
type InboundRequest struct {
	ItemID   FlexID `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// InboundResponse éxito de entrada, con el costo calculado.
type InboundResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Cost    float64 `json:"cost"`
}

// OutboundRequest salida de stock (cualquier usuario autenticado).
// Acepta item/item_id y destination/destination_id indistintamente.
type OutboundRequest struct {
	ItemID        FlexID `json:"item_id"`
	Item          FlexID `json:"item"`
	DestinationID FlexID `json:"destination_id"`
	Destination   FlexID `json:"destination"`
	Quantity      *int   `json:"quantity"`
}

// ResolvedItemID aplica la precedencia item_id > item.
func (r OutboundRequest) ResolvedItemID() FlexID {
	if !r.ItemID.Empty() {
		return r.ItemID
	}
	return r.Item
}

// ResolvedDestinationID aplica la precedencia destination_id > destination.
func (r OutboundRequest) ResolvedDestinationID() FlexID {
	if !r.DestinationID.Empty() {
		return r.DestinationID
	}
	return r.Destination
}

// TransactionResponse fila del historial de transacciones.
type TransactionResponse struct {
	ID          string  `json:"_id"`
	Timestamp   string  `json:"timestamp"`
	ItemName    string  `json:"item_name"`
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	DetailsName string  `json:"details_name"` // proveedor (in) o destino (out)
	Cost        float64 `json:"cost"`
	Status      string  `json:"status"`
}
