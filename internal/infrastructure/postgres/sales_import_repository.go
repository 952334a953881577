package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.SalesImportRepository = (*SalesImportRepo)(nil)

const batchColumns = `id, sha256, filename, status, rows_read, rows_valid, rows_invalid, rows_unknown_sku,
	movements_created, total_quantity_requested, total_quantity_applied, shortfalls, error, created_at, finished_at`

// SalesImportRepo lotes de importación de ventas; sha256 es único en la tabla.
type SalesImportRepo struct {
	q Querier
}

// NewSalesImportRepository construye el adaptador de lotes de importación.
func NewSalesImportRepository(q Querier) *SalesImportRepo {
	return &SalesImportRepo{q: q}
}

// Claim inserta el lote en PROCESSING. Si el hash ya existe devuelve el lote registrado.
func (r *SalesImportRepo) Claim(ctx context.Context, batch *entity.ImportBatch) (*entity.ImportBatch, error) {
	query := `
		INSERT INTO sales_import_batches (id, sha256, filename, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sha256) DO NOTHING
		RETURNING id`
	var id string
	err := r.q.QueryRow(ctx, query, batch.ID, batch.SHA256, batch.Filename, string(batch.Status), batch.CreatedAt).Scan(&id)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("claim import batch: %w", err)
	}
	existing, err := r.GetBySHA256(ctx, batch.SHA256)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("lote %s desaparecido tras conflicto: %w", batch.SHA256, domain.ErrConflict)
	}
	return existing, nil
}

// Reopen reinicia un lote existente en PROCESSING si nadie lo cambió desde que se leyó.
func (r *SalesImportRepo) Reopen(ctx context.Context, batch *entity.ImportBatch, from entity.ImportStatus, claimedAt time.Time) (bool, error) {
	query := `
		UPDATE sales_import_batches
		SET status = 'PROCESSING', filename = $2, created_at = $3,
			rows_read = 0, rows_valid = 0, rows_invalid = 0, rows_unknown_sku = 0, movements_created = 0,
			total_quantity_requested = 0, total_quantity_applied = 0, shortfalls = '[]'::jsonb,
			error = '', finished_at = NULL
		WHERE id = $1 AND status = $4 AND created_at = $5`
	tag, err := r.q.Exec(ctx, query, batch.ID, batch.Filename, batch.CreatedAt, string(from), claimedAt)
	if err != nil {
		return false, fmt.Errorf("reopen import batch: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Finish guarda el resultado terminal; solo procede si el lote sigue en PROCESSING.
func (r *SalesImportRepo) Finish(ctx context.Context, batch *entity.ImportBatch) error {
	shortfalls := batch.Shortfalls
	if shortfalls == nil {
		shortfalls = []entity.ImportShortfall{}
	}
	query := `
		UPDATE sales_import_batches
		SET status = $2, rows_read = $3, rows_valid = $4, rows_invalid = $5, rows_unknown_sku = $6,
			movements_created = $7, total_quantity_requested = $8, total_quantity_applied = $9,
			shortfalls = $10, error = $11, finished_at = $12
		WHERE id = $1 AND status = 'PROCESSING'`
	tag, err := r.q.Exec(ctx, query,
		batch.ID, string(batch.Status), batch.RowsRead, batch.RowsValid, batch.RowsInvalid, batch.RowsUnknownSKU,
		batch.MovementsCreated, batch.TotalQuantityRequested, batch.TotalQuantityApplied,
		shortfalls, batch.Error, batch.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("finish import batch: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales_import_batches WHERE id = $1)`, batch.ID).Scan(&exists); err != nil {
		return fmt.Errorf("finish import batch: %w", err)
	}
	if !exists {
		return fmt.Errorf("lote %s: %w", batch.ID, domain.ErrNotFound)
	}
	return fmt.Errorf("lote %s ya finalizado: %w", batch.ID, domain.ErrConflict)
}

// GetBySHA256 devuelve el lote del hash o (nil, nil) si no existe.
func (r *SalesImportRepo) GetBySHA256(ctx context.Context, sha256 string) (*entity.ImportBatch, error) {
	b, err := scanBatch(r.q.QueryRow(ctx, `SELECT `+batchColumns+` FROM sales_import_batches WHERE sha256 = $1`, sha256))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get import batch: %w", err)
	}
	return b, nil
}

// ListRecent lista los lotes del más reciente al más antiguo.
func (r *SalesImportRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ImportBatch, error) {
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+batchColumns+`
		FROM sales_import_batches
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list import batches: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.ImportBatch, 0)
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan import batch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.ImportBatch, error) {
	var (
		b      entity.ImportBatch
		status string
	)
	err := row.Scan(
		&b.ID, &b.SHA256, &b.Filename, &status, &b.RowsRead, &b.RowsValid, &b.RowsInvalid, &b.RowsUnknownSKU,
		&b.MovementsCreated, &b.TotalQuantityRequested, &b.TotalQuantityApplied, &b.Shortfalls, &b.Error,
		&b.CreatedAt, &b.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = entity.ImportStatus(status)
	return &b, nil
}
