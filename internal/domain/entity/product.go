package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la pastelería.
// PrecioOriginal solo se llena cuando el producto está en oferta (guarda el
// precio previo al descuento).
type Product struct {
	ID             string
	Codigo         string // único
	Nombre         string
	Descripcion    string
	Imagen         string
	CategoriaID    string
	Precio         decimal.Decimal
	PrecioOriginal *decimal.Decimal
	Stock          int
	EnOferta       bool
	Tamano         string
	Ingredientes   []string
	Personalizable bool
	Especial       string
	CreatedBy      string // id del usuario que lo creó
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
