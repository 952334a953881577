package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.SalesImportRepository = (*SalesImportRepository)(nil)

// SalesImportRepository lotes de importación en memoria, indexados por SHA-256.
type SalesImportRepository struct {
	s *Store
}

func (r *SalesImportRepository) Claim(_ context.Context, batch *entity.ImportBatch) (*entity.ImportBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.batches[batch.SHA256]; ok {
		return cloneBatch(existing), nil
	}
	r.s.batches[batch.SHA256] = cloneBatch(batch)
	return nil, nil
}

func (r *SalesImportRepository) Reopen(_ context.Context, batch *entity.ImportBatch, from entity.ImportStatus, claimedAt time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.batches[batch.SHA256]
	if !ok || current.ID != batch.ID {
		return false, fmt.Errorf("lote %s: %w", batch.ID, domain.ErrNotFound)
	}
	if current.Status != from || !current.CreatedAt.Equal(claimedAt) {
		return false, nil
	}
	r.s.batches[batch.SHA256] = cloneBatch(batch)
	return true, nil
}

func (r *SalesImportRepository) Finish(_ context.Context, batch *entity.ImportBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.batches[batch.SHA256]
	if !ok || current.ID != batch.ID {
		return fmt.Errorf("lote %s: %w", batch.ID, domain.ErrNotFound)
	}
	if current.Status.Terminal() {
		return fmt.Errorf("lote %s ya finalizado: %w", batch.ID, domain.ErrConflict)
	}
	r.s.batches[batch.SHA256] = cloneBatch(batch)
	return nil
}

func (r *SalesImportRepository) GetBySHA256(_ context.Context, sha256 string) (*entity.ImportBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.batches[sha256]
	if !ok {
		return nil, nil
	}
	return cloneBatch(b), nil
}

func (r *SalesImportRepository) ListRecent(_ context.Context, limit int) ([]*entity.ImportBatch, error) {
	r.s.mu.RLock()
	out := make([]*entity.ImportBatch, 0, len(r.s.batches))
	for _, b := range r.s.batches {
		out = append(out, cloneBatch(b))
	}
	r.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
