package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Codigo         string           `json:"codigo" validate:"required,max=50"`
	Nombre         string           `json:"nombre" validate:"required,max=200"`
	Descripcion    string           `json:"descripcion"`
	Imagen         string           `json:"imagen"`
	CategoriaID    string           `json:"categoria_id" validate:"required,uuid"`
	Precio         *decimal.Decimal `json:"precio" validate:"required"`
	PrecioOriginal *decimal.Decimal `json:"precio_original"`
	Stock          *int             `json:"stock"`
	EnOferta       *bool            `json:"en_oferta"`
	Tamano         string           `json:"tamano"`
	Ingredientes   []string         `json:"ingredientes"`
	Personalizable *bool            `json:"personalizable"`
	Especial       string           `json:"especial"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Nombre         *string          `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	Imagen         *string          `json:"imagen"`
	CategoriaID    *string          `json:"categoria_id"`
	Precio         *decimal.Decimal `json:"precio"`
	PrecioOriginal *decimal.Decimal `json:"precio_original"`
	Stock          *int             `json:"stock"`
	EnOferta       *bool            `json:"en_oferta"`
	Tamano         *string          `json:"tamano"`
	Ingredientes   []string         `json:"ingredientes"`
	Personalizable *bool            `json:"personalizable"`
	Especial       *string          `json:"especial"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string           `json:"id"`
	Codigo         string           `json:"codigo"`
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Imagen         string           `json:"imagen,omitempty"`
	CategoriaID    string           `json:"categoria_id"`
	Precio         decimal.Decimal  `json:"precio"`
	PrecioOriginal *decimal.Decimal `json:"precio_original,omitempty"`
	Stock          int              `json:"stock"`
	EnOferta       bool             `json:"en_oferta"`
	Tamano         string           `json:"tamano,omitempty"`
	Ingredientes   []string         `json:"ingredientes"`
	Personalizable bool             `json:"personalizable"`
	Especial       string           `json:"especial,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
