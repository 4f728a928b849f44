package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/milsabores/pasteleria-api/internal/domain/entity"
	"github.com/milsabores/pasteleria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, numero_orden, usuario_id, productos, subtotal, descuentos, iva, total,
	datos_envio, metodo_pago, estado, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Productos y datos_envio se guardan como JSONB.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste una orden nueva.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	productos, err := json.Marshal(o.Productos)
	if err != nil {
		return fmt.Errorf("marshal productos: %w", err)
	}
	envio, err := json.Marshal(o.DatosEnvio)
	if err != nil {
		return fmt.Errorf("marshal datos_envio: %w", err)
	}
	query := `
		INSERT INTO orders (id, numero_orden, usuario_id, productos, subtotal, descuentos, iva, total,
			datos_envio, metodo_pago, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.pool.Exec(ctx, query,
		o.ID, o.NumeroOrden, o.UsuarioID, productos, o.Subtotal, o.Descuentos, o.IVA, o.Total,
		envio, o.MetodoPago, o.Estado, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista órdenes más recientes primero. Los filtros (estado, usuario) se
// aplican en la consulta; el scoping de no-admins llega aquí ya inyectado como
// filtro de usuario.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Estado != "" {
		n++
		query += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, filter.Estado)
	}
	if filter.UsuarioID != "" {
		n++
		query += fmt.Sprintf(" AND usuario_id = $%d", n)
		args = append(args, filter.UsuarioID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders scan: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado y devuelve la orden actualizada.
// Devuelve (nil, nil) si la orden no existe.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, estado string) (*entity.Order, error) {
	query := `UPDATE orders SET estado = $2, updated_at = now() WHERE id = $1 RETURNING ` + orderColumns
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id, estado))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}

// Statistics agrega en SQL sobre el conjunto completo de órdenes: total,
// ventas, ticket promedio y conteos por estado.
func (r *OrderRepo) Statistics(ctx context.Context) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{
		TotalVentas:   decimal.Zero,
		PromedioVenta: decimal.Zero,
		PorEstado:     map[string]int{},
	}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(AVG(total), 0)
		FROM orders`,
	).Scan(&stats.TotalOrdenes, &stats.TotalVentas, &stats.PromedioVenta)
	if err != nil {
		return nil, fmt.Errorf("order statistics: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT estado, COUNT(*) FROM orders GROUP BY estado`)
	if err != nil {
		return nil, fmt.Errorf("order statistics por estado: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var estado string
		var count int
		if err := rows.Scan(&estado, &count); err != nil {
			return nil, fmt.Errorf("order statistics scan: %w", err)
		}
		stats.PorEstado[estado] = count
	}
	return stats, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var productos, envio []byte
	err := row.Scan(
		&o.ID, &o.NumeroOrden, &o.UsuarioID, &productos, &o.Subtotal, &o.Descuentos, &o.IVA,
		&o.Total, &envio, &o.MetodoPago, &o.Estado, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(productos, &o.Productos); err != nil {
		return nil, fmt.Errorf("unmarshal productos: %w", err)
	}
	if err := json.Unmarshal(envio, &o.DatosEnvio); err != nil {
		return nil, fmt.Errorf("unmarshal datos_envio: %w", err)
	}
	return &o, nil
}
