package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, nombre, slug, descripcion, created_at, updated_at
		FROM categories ORDER BY nombre ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list categories scan: %w", err)
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// GetBySlug obtiene una categoría por su slug. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `
		SELECT id, nombre, slug, descripcion, created_at, updated_at
		FROM categories WHERE slug = $1`
	var c entity.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&c.ID, &c.Nombre, &c.Slug, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return &c, nil
}
