package entity

import "time"

// Category representa una categoría del catálogo (tortas, pasteles, etc.).
// Cada producto pertenece a exactamente una categoría.
type Category struct {
	ID          string
	Nombre      string
	Slug        string // único, usado en la URL pública
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
