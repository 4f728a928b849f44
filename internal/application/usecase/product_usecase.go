package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El chequeo previo del código es el camino rápido;
// el índice único en la DB es la garantía ante dos creaciones concurrentes.
func (uc *ProductUseCase) Create(ctx context.Context, createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Codigo == "" || in.Nombre == "" || in.Precio == nil || in.CategoriaID == "" {
		return nil, fmt.Errorf("%w: código, nombre, precio y categoría son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCodigo(ctx, in.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Imagen:         in.Imagen,
		CategoriaID:    in.CategoriaID,
		Precio:         *in.Precio,
		PrecioOriginal: in.PrecioOriginal,
		Tamano:         in.Tamano,
		Ingredientes:   in.Ingredientes,
		Especial:       in.Especial,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.EnOferta != nil {
		product.EnOferta = *in.EnOferta
	}
	if in.Personalizable != nil {
		product.Personalizable = *in.Personalizable
	}
	if product.Ingredientes == nil {
		product.Ingredientes = []string{}
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo con filtros opcionales (categoría, oferta, búsqueda).
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListMine lista los productos creados por el usuario autenticado.
func (uc *ProductUseCase) ListMine(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza parcialmente un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		product.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.Imagen != nil {
		product.Imagen = *in.Imagen
	}
	if in.CategoriaID != nil {
		product.CategoriaID = *in.CategoriaID
	}
	if in.Precio != nil {
		product.Precio = *in.Precio
	}
	if in.PrecioOriginal != nil {
		product.PrecioOriginal = in.PrecioOriginal
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.EnOferta != nil {
		product.EnOferta = *in.EnOferta
	}
	if in.Tamano != nil {
		product.Tamano = *in.Tamano
	}
	if in.Ingredientes != nil {
		product.Ingredientes = in.Ingredientes
	}
	if in.Personalizable != nil {
		product.Personalizable = *in.Personalizable
	}
	if in.Especial != nil {
		product.Especial = *in.Especial
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	ingredientes := p.Ingredientes
	if ingredientes == nil {
		ingredientes = []string{}
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Imagen:         p.Imagen,
		CategoriaID:    p.CategoriaID,
		Precio:         p.Precio,
		PrecioOriginal: p.PrecioOriginal,
		Stock:          p.Stock,
		EnOferta:       p.EnOferta,
		Tamano:         p.Tamano,
		Ingredientes:   ingredientes,
		Personalizable: p.Personalizable,
		Especial:       p.Especial,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
