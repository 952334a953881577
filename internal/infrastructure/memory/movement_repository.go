package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository ledger en memoria fuera de transacción.
// Append abre su propia transacción por producto.
type MovementRepository struct {
	s *Store
}

func (r *MovementRepository) Append(ctx context.Context, m *entity.Movement) error {
	return r.s.TxRunner().RunForProduct(ctx, m.ProductID, func(movRepo repository.MovementRepository, _ repository.StockRepository) error {
		return movRepo.Append(ctx, m)
	})
}

func (r *MovementRepository) ListByProduct(_ context.Context, productID int64) ([]*entity.Movement, error) {
	return r.s.committedMovements(productID), nil
}

func (r *MovementRepository) ProductIDs(_ context.Context) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedKeys(r.s.movements), nil
}

func (r *MovementRepository) TotalsByReference(_ context.Context, reference string) (int, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var (
		count int
		qty   int64
	)
	for _, list := range r.s.movements {
		for _, m := range list {
			if m.Reference == reference {
				count++
				qty += m.Quantity
			}
		}
	}
	return count, qty, nil
}

func (r *MovementRepository) SumByType(_ context.Context, movementType entity.MovementType, limit int) ([]repository.ProductQuantity, error) {
	r.s.mu.RLock()
	totals := make(map[int64]int64)
	for productID, list := range r.s.movements {
		for _, m := range list {
			if m.Type == movementType {
				totals[productID] += m.Quantity
			}
		}
	}
	r.s.mu.RUnlock()

	out := make([]repository.ProductQuantity, 0, len(totals))
	for productID, qty := range totals {
		out = append(out, repository.ProductQuantity{ProductID: productID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
