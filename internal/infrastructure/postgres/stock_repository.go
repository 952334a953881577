package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la proyección del producto; ceros si aún no existe la fila.
func (r *StockRepo) Get(ctx context.Context, productID int64) (entity.StockLevel, error) {
	query := `SELECT product_id, backroom, shopfloor, updated_at FROM stock_levels WHERE product_id = $1`
	var s entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ProductID, &s.Backroom, &s.Shopfloor, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StockLevel{ProductID: productID}, nil
		}
		return entity.StockLevel{}, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// Save inserta o sobrescribe la proyección del producto.
func (r *StockRepo) Save(ctx context.Context, level entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, backroom, shopfloor, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id)
		DO UPDATE SET backroom = EXCLUDED.backroom, shopfloor = EXCLUDED.shopfloor, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, level.ProductID, level.Backroom, level.Shopfloor); err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProducts devuelve las proyecciones existentes de los productos pedidos.
func (r *StockRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64]entity.StockLevel, error) {
	out := make(map[int64]entity.StockLevel, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `SELECT product_id, backroom, shopfloor, updated_at FROM stock_levels WHERE product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ProductID, &s.Backroom, &s.Shopfloor, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out[s.ProductID] = s
	}
	return out, rows.Err()
}
