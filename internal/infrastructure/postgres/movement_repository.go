package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger de movimientos sobre PostgreSQL. Solo inserta; la tabla rechaza UPDATE y DELETE.
type MovementRepo struct {
	q Querier
	// locked es el producto cuyo advisory lock tiene la transacción (0 = repositorio sobre el pool).
	locked int64
}

// NewMovementRepository construye el ledger sobre el pool. Cada Append toma el candado del producto.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func newLockedMovementRepository(tx pgx.Tx, productID int64) *MovementRepo {
	return &MovementRepo{q: tx, locked: productID}
}

// Append valida y anexa el movimiento. occurred_at nunca queda antes del último movimiento del producto.
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if r.locked == 0 {
		return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
			if err := lockProduct(ctx, tx, m.ProductID); err != nil {
				return err
			}
			return insertMovement(ctx, tx, m)
		})
	}
	if m.ProductID != r.locked {
		return &domain.InvariantViolationError{
			ProductID: m.ProductID,
			Detail:    fmt.Sprintf("escritura fuera del producto bloqueado %d", r.locked),
		}
	}
	return insertMovement(ctx, r.q, m)
}

func insertMovement(ctx context.Context, q Querier, m *entity.Movement) error {
	occurredAt := m.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	query := `
		INSERT INTO movements (product_id, type, quantity, from_location, to_location, occurred_at, note, reference)
		VALUES ($1, $2, $3, $4, $5,
			GREATEST($6::timestamptz, COALESCE((SELECT max(occurred_at) FROM movements WHERE product_id = $1), $6::timestamptz)),
			$7, $8)
		RETURNING id, occurred_at`
	err := q.QueryRow(ctx, query,
		m.ProductID, m.Type.String(), m.Quantity,
		locationArg(m.FromLocation), locationArg(m.ToLocation),
		occurredAt, m.Note, m.Reference,
	).Scan(&m.ID, &m.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del producto en orden (occurred_at, id).
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity, from_location, to_location, occurred_at, note, reference
		FROM movements
		WHERE product_id = $1
		ORDER BY occurred_at, id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Movement, 0)
	for rows.Next() {
		var (
			m        entity.Movement
			typ      string
			from, to *string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &typ, &m.Quantity, &from, &to, &m.OccurredAt, &m.Note, &m.Reference); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if m.Type, err = entity.ParseMovementType(typ); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", m.ID, err)
		}
		if m.FromLocation, err = scanLocation(from); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", m.ID, err)
		}
		if m.ToLocation, err = scanLocation(to); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", m.ID, err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ProductIDs devuelve los productos con al menos un movimiento, ascendente.
func (r *MovementRepo) ProductIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT product_id FROM movements ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("list movement products: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan movement products: %w", err)
	}
	return ids, nil
}

// TotalsByReference cuenta y suma los movimientos de una referencia (lote de importación).
func (r *MovementRepo) TotalsByReference(ctx context.Context, reference string) (int, int64, error) {
	var (
		count int
		qty   int64
	)
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0)::bigint
		FROM movements
		WHERE reference = $1`, reference).Scan(&count, &qty)
	if err != nil {
		return 0, 0, fmt.Errorf("totals by reference: %w", err)
	}
	return count, qty, nil
}

// SumByType suma cantidades por producto para un tipo; limit <= 0 no limita.
func (r *MovementRepo) SumByType(ctx context.Context, movementType entity.MovementType, limit int) ([]repository.ProductQuantity, error) {
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	query := `
		SELECT product_id, SUM(quantity)::bigint
		FROM movements
		WHERE type = $1
		GROUP BY product_id
		ORDER BY 2 DESC, product_id
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, movementType.String(), limitArg)
	if err != nil {
		return nil, fmt.Errorf("sum movements: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ProductQuantity, 0)
	for rows.Next() {
		var pq repository.ProductQuantity
		if err := rows.Scan(&pq.ProductID, &pq.Quantity); err != nil {
			return nil, fmt.Errorf("scan sum: %w", err)
		}
		out = append(out, pq)
	}
	return out, rows.Err()
}
