package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/application/usecase"
	"github.com/milsabores/pasteleria-api/internal/domain"
)

// CategoryHandler maneja el catálogo de categorías (público).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductsBySlug godoc
// @Summary      Productos de una categoría
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "slug de la categoría"
// @Success      200  {object}  dto.CategoryProductsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{slug}/products [get]
func (h *CategoryHandler) ProductsBySlug(c *fiber.Ctx) error {
	out, err := h.uc.ProductsBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
