package usecase

import (
	"context"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

// CategoryUseCase navegación pública del catálogo por categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// ProductsBySlug devuelve la categoría identificada por su slug junto con sus productos.
func (uc *CategoryUseCase) ProductsBySlug(ctx context.Context, slug string) (*dto.CategoryProductsResponse, error) {
	cat, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListByCategory(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CategoryProductsResponse{
		Category: toCategoryResponse(cat),
		Products: make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, *toProductResponse(p))
	}
	return resp, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Slug:        c.Slug,
		Descripcion: c.Descripcion,
	}
}
