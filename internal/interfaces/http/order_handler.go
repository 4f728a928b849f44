package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/application/usecase"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

// OrderHandler maneja el ciclo de vida de órdenes.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una orden (checkout; acepta compras anónimas)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "productos, montos y datos de envío"
// @Success      201  {object}  dto.CreateOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido"})
	}
	// Con OptionalAuth el usuario puede venir autenticado o no; una compra
	// anónima persiste la orden sin usuario asociado.
	var usuarioID *string
	if id := GetUserID(c); id != "" {
		usuarioID = &id
	}
	out, err := h.uc.Create(c.Context(), usuarioID, in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes (admin ve todas; cliente solo las suyas)
// @Tags         orders
// @Produce      json
// @Param        estado     query  string  false  "filtrar por estado"
// @Param        usuarioId  query  string  false  "filtrar por usuario (solo admin)"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	actor, _ := GetIdentity(c)
	filter := repository.OrderFilter{
		Estado:    c.Query("estado"),
		UsuarioID: c.Query("usuarioId"),
	}
	out, err := h.uc.ListFor(c.Context(), actor, filter)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Órdenes de un usuario (dueño o admin)
// @Tags         orders
// @Produce      json
// @Param        usuarioId  path  string  true  "ID del usuario"
// @Success      200  {array}   dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/usuario/{usuarioId} [get]
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	actor, _ := GetIdentity(c)
	out, err := h.uc.ListForUser(c.Context(), actor, c.Params("usuarioId"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una orden (dueño o admin)
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	actor, _ := GetIdentity(c)
	out, err := h.uc.GetFor(c.Context(), actor, c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden (admin)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido"})
	}
	actor, _ := GetIdentity(c)
	out, err := h.uc.Transition(c.Context(), actor, c.Params("id"), in.Estado)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Statistics godoc
// @Summary      Estadísticas de ventas (admin)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/estadisticas [get]
func (h *OrderHandler) Statistics(c *fiber.Ctx) error {
	actor, _ := GetIdentity(c)
	out, err := h.uc.Statistics(c.Context(), actor)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Boleta PDF de una orden (dueño o admin)
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/boleta [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	actor, _ := GetIdentity(c)
	pdfBytes, err := h.uc.ReceiptPDF(c.Context(), actor, c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="boleta-%s.pdf"`, c.Params("id")))
	return c.Send(pdfBytes)
}

// orderError traduce errores de dominio a HTTP. La transición ilegal de
// estado es un conflicto (409); un estado desconocido es entrada inválida
// (400); consultar una orden ajena responde 403, nunca 404.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tienes permisos para esta acción"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Orden no encontrada"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
