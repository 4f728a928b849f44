package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem es una línea de la orden: referencia al producto más los valores
// congelados al momento de la compra.
type OrderItem struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
}

// ShippingData datos de envío de una orden (todos obligatorios salvo teléfono).
type ShippingData struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion"`
	Comuna    string `json:"comuna"`
	Region    string `json:"region"`
}

// Order representa una orden de compra. UsuarioID es nulo para compras
// anónimas (checkout sin cuenta). Productos y DatosEnvio se persisten
// embebidos como JSONB.
type Order struct {
	ID          string
	NumeroOrden string // único, formato ORD-<timestamp>-<0..999>
	UsuarioID   *string
	Productos   []OrderItem
	Subtotal    decimal.Decimal
	Descuentos  decimal.Decimal
	IVA         decimal.Decimal
	Total       decimal.Decimal
	DatosEnvio  ShippingData
	MetodoPago  string
	Estado      string // ver internal/domain/orders
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
