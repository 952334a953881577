package memory

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository proyección de existencias fuera de transacción.
type StockRepository struct {
	s *Store
}

func (r *StockRepository) Get(_ context.Context, productID int64) (entity.StockLevel, error) {
	return r.s.committedStock(productID), nil
}

// Save sobrescribe la proyección bajo el candado del producto.
func (r *StockRepository) Save(ctx context.Context, level entity.StockLevel) error {
	return r.s.TxRunner().RunForProduct(ctx, level.ProductID, func(_ repository.MovementRepository, stockRepo repository.StockRepository) error {
		return stockRepo.Save(ctx, level)
	})
}

func (r *StockRepository) ListByProducts(_ context.Context, productIDs []int64) (map[int64]entity.StockLevel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]entity.StockLevel, len(productIDs))
	for _, id := range productIDs {
		if level, ok := r.s.stocks[id]; ok {
			out[id] = level
		}
	}
	return out, nil
}
