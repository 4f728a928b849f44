package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Slug        string `json:"slug"`
	Descripcion string `json:"descripcion,omitempty"`
}

// CategoryProductsResponse categoría junto con sus productos.
type CategoryProductsResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}
