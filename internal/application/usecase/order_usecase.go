package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/orders"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
	"github.com/milsabores/pasteleria-api/pkg/token"
)

// ReceiptGenerator puerto para la representación gráfica (PDF) de una orden.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el caso de uso a Maroto.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}

// OrderUseCase ciclo de vida de órdenes: creación, consulta con control de
// propiedad, transición de estados (solo admin) y estadísticas.
type OrderUseCase struct {
	repo    repository.OrderRepository
	receipt ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, receipt ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, receipt: receipt}
}

// Create valida y persiste una orden nueva. usuarioID es nil en compras
// anónimas. Toda orden nace en estado pendiente con un número generado.
func (uc *OrderUseCase) Create(ctx context.Context, usuarioID *string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if err := orders.ValidateNew(in.Productos, in.DatosEnvio, in.MetodoPago); err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		NumeroOrden: orders.GenerateNumber(),
		UsuarioID:   usuarioID,
		Productos:   in.Productos,
		Subtotal:    in.Subtotal,
		Descuentos:  in.Descuentos,
		IVA:         in.IVA,
		Total:       in.Total,
		DatosEnvio:  in.DatosEnvio,
		MetodoPago:  in.MetodoPago,
		Estado:      orders.StatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return &dto.CreateOrderResponse{
		ID:          order.ID,
		NumeroOrden: order.NumeroOrden,
		Orden:       *toOrderResponse(order),
	}, nil
}

// GetFor obtiene una orden por id verificando propiedad después del fetch:
// solo el dueño o un admin pueden verla. Un mismatch responde 403 y no 404.
func (uc *OrderUseCase) GetFor(ctx context.Context, actor token.Identity, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin(actor) && !owns(actor, order) {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// ListFor lista órdenes según el rol del actor. Un admin puede filtrar por
// estado y usuario; a un no-admin se le inyecta su propia identidad como
// filtro en la consulta (nunca post-filtrado), de modo que no pueda sondear
// la existencia de órdenes ajenas manipulando parámetros.
func (uc *OrderUseCase) ListFor(ctx context.Context, actor token.Identity, filter repository.OrderFilter) ([]dto.OrderResponse, error) {
	if !isAdmin(actor) {
		filter.UsuarioID = actor.ID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// ListForUser lista las órdenes de un usuario concreto: solo el propio
// usuario o un admin.
func (uc *OrderUseCase) ListForUser(ctx context.Context, actor token.Identity, usuarioID string) ([]dto.OrderResponse, error) {
	if !isAdmin(actor) && actor.ID != usuarioID {
		return nil, domain.ErrForbidden
	}
	return uc.ListFor(ctx, actor, repository.OrderFilter{UsuarioID: usuarioID})
}

// Transition cambia el estado de una orden. Solo admin; el estado debe ser
// reconocido y la transición debe respetar la máquina de estados (entregado y
// cancelado son terminales).
func (uc *OrderUseCase) Transition(ctx context.Context, actor token.Identity, id, estado string) (*dto.OrderResponse, error) {
	if !isAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	if !orders.ValidStatus(estado) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, estado)
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !orders.CanTransition(order.Estado, estado) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrConflict, order.Estado, estado)
	}
	updated, err := uc.repo.UpdateStatus(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(updated), nil
}

// Statistics agrega conteo, ventas totales, ticket promedio y conteos por
// estado sobre todas las órdenes. Solo admin.
func (uc *OrderUseCase) Statistics(ctx context.Context, actor token.Identity) (*dto.OrderStatsResponse, error) {
	if !isAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	stats, err := uc.repo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{
		TotalOrdenes:  stats.TotalOrdenes,
		TotalVentas:   stats.TotalVentas,
		PromedioVenta: stats.PromedioVenta,
		PorEstado:     stats.PorEstado,
	}, nil
}

// ReceiptPDF genera la boleta PDF de una orden, con el mismo control de
// propiedad que GetFor.
func (uc *OrderUseCase) ReceiptPDF(ctx context.Context, actor token.Identity, id string) ([]byte, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin(actor) && !owns(actor, order) {
		return nil, domain.ErrForbidden
	}
	return uc.receipt.GenerateReceipt(ctx, order)
}

func isAdmin(actor token.Identity) bool {
	return actor.Role == entity.RoleAdmin
}

func owns(actor token.Identity, order *entity.Order) bool {
	return order.UsuarioID != nil && *order.UsuarioID == actor.ID
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		NumeroOrden: o.NumeroOrden,
		UsuarioID:   o.UsuarioID,
		Productos:   o.Productos,
		Subtotal:    o.Subtotal,
		Descuentos:  o.Descuentos,
		IVA:         o.IVA,
		Total:       o.Total,
		DatosEnvio:  o.DatosEnvio,
		MetodoPago:  o.MetodoPago,
		Estado:      o.Estado,
		CreatedAt:   o.CreatedAt,
	}
}
