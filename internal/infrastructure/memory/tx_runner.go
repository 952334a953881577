package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa por producto con un candado propio y aplica los cambios en bloque al confirmar.
type TxRunner struct {
	s *Store
}

// RunForProduct toma el candado del producto, ejecuta fn sobre repositorios con escritura diferida
// y solo publica movimientos y proyección si fn termina sin error.
func (r *TxRunner) RunForProduct(ctx context.Context, productID int64, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock, err := r.s.lockProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("bloqueo de producto %d: %w", productID, err)
	}
	defer unlock()

	tx := &txState{s: r.s, productID: productID}
	if err := fn(&txMovementRepo{tx: tx}, &txStockRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// txState cambios pendientes de una transacción sobre un único producto.
type txState struct {
	s         *Store
	productID int64
	movements []*entity.Movement
	stock     *entity.StockLevel
}

func (tx *txState) commit() {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	for _, m := range tx.movements {
		tx.s.movements[m.ProductID] = append(tx.s.movements[m.ProductID], m)
	}
	if tx.stock != nil {
		tx.s.stocks[tx.productID] = *tx.stock
	}
}

func (tx *txState) ensureProduct(productID int64) error {
	if productID != tx.productID {
		return &domain.InvariantViolationError{
			ProductID: productID,
			Detail:    fmt.Sprintf("escritura fuera del producto bloqueado %d", tx.productID),
		}
	}
	return nil
}

type txMovementRepo struct {
	tx *txState
}

func (r *txMovementRepo) Append(_ context.Context, m *entity.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := r.tx.ensureProduct(m.ProductID); err != nil {
		return err
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = r.tx.s.now()
	}
	if last := r.lastOccurredAt(); !last.IsZero() && m.OccurredAt.Before(last) {
		m.OccurredAt = last
	}
	m.ID = r.tx.s.lastMovementID.Add(1)
	r.tx.movements = append(r.tx.movements, cloneMovement(m))
	return nil
}

func (r *txMovementRepo) lastOccurredAt() (last time.Time) {
	if n := len(r.tx.movements); n > 0 {
		return r.tx.movements[n-1].OccurredAt
	}
	r.tx.s.mu.RLock()
	defer r.tx.s.mu.RUnlock()
	if list := r.tx.s.movements[r.tx.productID]; len(list) > 0 {
		return list[len(list)-1].OccurredAt
	}
	return last
}

func (r *txMovementRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Movement, error) {
	out := r.tx.s.committedMovements(productID)
	if productID == r.tx.productID {
		for _, m := range r.tx.movements {
			out = append(out, cloneMovement(m))
		}
	}
	return out, nil
}

func (r *txMovementRepo) ProductIDs(ctx context.Context) ([]int64, error) {
	return r.tx.s.Movements().ProductIDs(ctx)
}

func (r *txMovementRepo) SumByType(ctx context.Context, movementType entity.MovementType, limit int) ([]repository.ProductQuantity, error) {
	return r.tx.s.Movements().SumByType(ctx, movementType, limit)
}

func (r *txMovementRepo) TotalsByReference(ctx context.Context, reference string) (int, int64, error) {
	return r.tx.s.Movements().TotalsByReference(ctx, reference)
}

type txStockRepo struct {
	tx *txState
}

func (r *txStockRepo) Get(_ context.Context, productID int64) (entity.StockLevel, error) {
	if productID == r.tx.productID && r.tx.stock != nil {
		return *r.tx.stock, nil
	}
	return r.tx.s.committedStock(productID), nil
}

func (r *txStockRepo) Save(_ context.Context, level entity.StockLevel) error {
	if err := r.tx.ensureProduct(level.ProductID); err != nil {
		return err
	}
	r.tx.stock = &level
	return nil
}

func (r *txStockRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64]entity.StockLevel, error) {
	out, err := r.tx.s.Stocks().ListByProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if r.tx.stock != nil && slices.Contains(productIDs, r.tx.productID) {
		out[r.tx.productID] = *r.tx.stock
	}
	return out, nil
}
