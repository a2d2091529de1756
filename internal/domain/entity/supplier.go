package entity

// Supplier representa un proveedor (origen de entradas). Soft-delete vía IsActive.
type Supplier struct {
	ID       string
	Name     string
	Contact  string
	Address  string
	IsActive bool
}
