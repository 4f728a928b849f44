package repository

import (
	"context"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar el catálogo.
type ProductFilter struct {
	CategoriaID string // id de la categoría
	EnOferta    bool   // solo productos en oferta
	Buscar      string // búsqueda ILIKE sobre nombre, descripción y código
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando no existe la fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoriaID string) ([]*entity.Product, error)
	ListByCreator(ctx context.Context, userID string) ([]*entity.Product, error)
}
