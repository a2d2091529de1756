package entity

// Category representa una categoría de ítems. Nunca se borra físicamente:
// el soft-delete marca IsActive=false.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
}
