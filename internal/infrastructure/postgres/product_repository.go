package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milsabores/pasteleria-api/internal/domain"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, codigo, nombre, descripcion, imagen, categoria_id, precio, precio_original,
	stock, en_oferta, tamano, ingredientes, personalizable, especial, created_by, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto. Un código duplicado (índice único) se
// traduce a ErrCodeAlreadyExists.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, codigo, nombre, descripcion, imagen, categoria_id, precio, precio_original,
			stock, en_oferta, tamano, ingredientes, personalizable, especial, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Imagen, p.CategoriaID, p.Precio, p.PrecioOriginal,
		p.Stock, p.EnOferta, p.Tamano, p.Ingredientes, p.Personalizable, p.Especial, p.CreatedBy,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanOneProduct(r.pool.QueryRow(ctx, query, id), "get product")
}

// GetByCodigo obtiene un producto por su código único. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE codigo = $1`
	return scanOneProduct(r.pool.QueryRow(ctx, query, codigo), "get product by codigo")
}

// Update actualiza un producto completo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, descripcion = $3, imagen = $4, categoria_id = $5, precio = $6,
			precio_original = $7, stock = $8, en_oferta = $9, tamano = $10, ingredientes = $11,
			personalizable = $12, especial = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.Imagen, p.CategoriaID, p.Precio, p.PrecioOriginal,
		p.Stock, p.EnOferta, p.Tamano, p.Ingredientes, p.Personalizable, p.Especial, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo con filtros opcionales, ordenado por nombre.
// La búsqueda usa ILIKE sobre nombre, descripción y código.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	n := 0
	if filter.CategoriaID != "" {
		n++
		query += fmt.Sprintf(" AND categoria_id = $%d", n)
		args = append(args, filter.CategoriaID)
	}
	if filter.EnOferta {
		query += " AND en_oferta = true"
	}
	if filter.Buscar != "" {
		n++
		query += fmt.Sprintf(" AND (nombre ILIKE $%d OR descripcion ILIKE $%d OR codigo ILIKE $%d)", n, n, n)
		args = append(args, "%"+filter.Buscar+"%")
	}
	query += " ORDER BY nombre ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// ListByCategory lista los productos de una categoría ordenados por nombre.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoriaID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE categoria_id = $1 ORDER BY nombre ASC`
	rows, err := r.pool.Query(ctx, query, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return scanProducts(rows)
}

// ListByCreator lista los productos creados por un usuario, más recientes primero.
func (r *ProductRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE created_by = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products by creator: %w", err)
	}
	return scanProducts(rows)
}

func scanOneProduct(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Imagen, &p.CategoriaID, &p.Precio,
		&p.PrecioOriginal, &p.Stock, &p.EnOferta, &p.Tamano, &p.Ingredientes, &p.Personalizable,
		&p.Especial, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
}
