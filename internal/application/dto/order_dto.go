package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear una orden. Los montos vienen
// calculados por el carrito del frontend; el backend valida estructura y
// datos de envío.
type CreateOrderRequest struct {
	Productos  []entity.OrderItem  `json:"productos" validate:"required,min=1"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Descuentos decimal.Decimal     `json:"descuentos"`
	IVA        decimal.Decimal     `json:"iva"`
	Total      decimal.Decimal     `json:"total"`
	DatosEnvio entity.ShippingData `json:"datos_envio" validate:"required"`
	MetodoPago string              `json:"metodo_pago" validate:"required"`
}

// UpdateOrderStatusRequest cambio de estado (solo admin).
type UpdateOrderStatusRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID          string              `json:"id"`
	NumeroOrden string              `json:"numero_orden"`
	UsuarioID   *string             `json:"usuario_id,omitempty"`
	Productos   []entity.OrderItem  `json:"productos"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Descuentos  decimal.Decimal     `json:"descuentos"`
	IVA         decimal.Decimal     `json:"iva"`
	Total       decimal.Decimal     `json:"total"`
	DatosEnvio  entity.ShippingData `json:"datos_envio"`
	MetodoPago  string              `json:"metodo_pago"`
	Estado      string              `json:"estado"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreateOrderResponse respuesta del POST: id y número visibles de inmediato
// más la orden completa.
type CreateOrderResponse struct {
	ID          string        `json:"id"`
	NumeroOrden string        `json:"numero_orden"`
	Orden       OrderResponse `json:"orden"`
}

// OrderStatsResponse agregados para el panel de administración.
type OrderStatsResponse struct {
	TotalOrdenes  int             `json:"total_ordenes"`
	TotalVentas   decimal.Decimal `json:"total_ventas"`
	PromedioVenta decimal.Decimal `json:"promedio_venta"`
	PorEstado     map[string]int  `json:"por_estado"`
}
