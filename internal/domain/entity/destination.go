package entity

// Destination representa un destino de salidas de stock. Soft-delete vía IsActive.
type Destination struct {
	ID       string
	Name     string
	Contact  string
	Address  string
	IsActive bool
}
