package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// OrderFilter filtros para listar órdenes. UsuarioID se usa también para
// acotar el listado de no-admins a sus propias órdenes: el filtro se inyecta
// en la consulta SQL, nunca se post-filtra en memoria.
type OrderFilter struct {
	Estado    string
	UsuarioID string
}

// OrderStats agregados sobre el conjunto completo de órdenes.
type OrderStats struct {
	TotalOrdenes  int
	TotalVentas   decimal.Decimal
	PromedioVenta decimal.Decimal
	PorEstado     map[string]int
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// GetByID devuelve (nil, nil) cuando no existe la fila.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, estado string) (*entity.Order, error)
	Statistics(ctx context.Context) (*OrderStats, error)
}
