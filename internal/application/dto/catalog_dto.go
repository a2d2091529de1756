package dto

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// CategoryResponse categoría serializada. IsActive viaja como 1/0 por
// compatibilidad con el cliente de tablas.
type CategoryResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    int    `json:"is_active"`
}

// ContactRequest alta/edición de proveedor o destino (misma forma).
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Contact string `json:"contact" validate:"max=255"`
	Address string `json:"address" validate:"max=255"`
}

// ContactResponse proveedor o destino serializado.
type ContactResponse struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// OptionDTO entrada de dropdown {id, value} para los formularios.
type OptionDTO struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
