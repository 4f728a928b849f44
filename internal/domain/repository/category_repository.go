package repository

import (
	"context"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
