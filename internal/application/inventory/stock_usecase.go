package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// StockUseCase expone la proyección de existencias unida al registro de productos.
// Confía en las invariantes del ledger: si observa una cantidad negativa falla en voz alta
// en lugar de recortarla.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	ledger      repository.MovementRepository
	metrics     Metrics
	log         *logger.Logger
}

// NewStockUseCase construye el agregador. metrics puede ser nil.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	ledger repository.MovementRepository,
	metrics Metrics,
	log *logger.Logger,
) *StockUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		ledger:      ledger,
		metrics:     metrics,
		log:         log,
	}
}

// stockView producto del registro con su nivel de existencias.
type stockView struct {
	product *entity.Product
	level   entity.StockLevel
}

// CurrentStock devuelve las existencias de un producto.
func (uc *StockUseCase) CurrentStock(ctx context.Context, productID int64) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	level, err := uc.stockRepo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkLevel(level); err != nil {
		return nil, err
	}
	out := toStockResponse(stockView{product: product, level: level})
	return &out, nil
}

// ListAll lista existencias de los productos activos; con query filtra por SKU o nombre
// (subcadena, sin distinguir mayúsculas) sobre todo el registro.
func (uc *StockUseCase) ListAll(ctx context.Context, query string) ([]dto.StockResponse, error) {
	views, err := uc.views(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toStockResponse(v))
	}
	return out, nil
}

// ListLow igual que ListAll pero solo los productos con total por debajo del mínimo.
func (uc *StockUseCase) ListLow(ctx context.Context, query string) ([]dto.StockResponse, error) {
	views, err := uc.views(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0)
	for _, v := range views {
		if v.level.Low(v.product.MinTotal) {
			out = append(out, toStockResponse(v))
		}
	}
	return out, nil
}

// Rebuild reconstruye la proyección de un producto plegando su ledger completo y la sobrescribe.
// Informa si la proyección anterior difería (drift).
func (uc *StockUseCase) Rebuild(ctx context.Context, productID int64) (*dto.StockRebuildResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	return uc.rebuild(ctx, productID)
}

// RebuildAll reconstruye todos los productos con movimientos. Se detiene en el primer error.
func (uc *StockUseCase) RebuildAll(ctx context.Context) ([]dto.StockRebuildResponse, error) {
	ids, err := uc.ledger.ProductIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRebuildResponse, 0, len(ids))
	for _, id := range ids {
		res, err := uc.rebuild(ctx, id)
		if err != nil {
			return out, err
		}
		out = append(out, *res)
	}
	return out, nil
}

func (uc *StockUseCase) rebuild(ctx context.Context, productID int64) (*dto.StockRebuildResponse, error) {
	var res dto.StockRebuildResponse
	err := uc.txRunner.RunForProduct(ctx, productID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		movements, err := movRepo.ListByProduct(ctx, productID)
		if err != nil {
			return err
		}
		replayed, err := inventory.Replay(productID, movements)
		if err != nil {
			return err
		}
		previous, err := stockRepo.Get(ctx, productID)
		if err != nil {
			return err
		}
		if replayed.UpdatedAt.IsZero() {
			replayed.UpdatedAt = previous.UpdatedAt
		}
		res = dto.StockRebuildResponse{
			ProductID:         productID,
			Movements:         len(movements),
			PreviousBackroom:  previous.Backroom,
			PreviousShopfloor: previous.Shopfloor,
			BackroomQty:       replayed.Backroom,
			ShopfloorQty:      replayed.Shopfloor,
			Drift:             previous.Backroom != replayed.Backroom || previous.Shopfloor != replayed.Shopfloor,
		}
		return stockRepo.Save(ctx, replayed)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvariantViolation) {
			uc.metrics.InvariantViolation()
			uc.log.Error().Err(err).Int64("product_id", productID).Msg("el ledger produce existencias negativas")
		}
		return nil, err
	}
	if res.Drift {
		uc.log.Warn().
			Int64("product_id", productID).
			Int64("previous_backroom", res.PreviousBackroom).
			Int64("previous_shopfloor", res.PreviousShopfloor).
			Int64("backroom", res.BackroomQty).
			Int64("shopfloor", res.ShopfloorQty).
			Msg("proyección de existencias corregida")
	}
	return &res, nil
}

// views consulta el registro fuera de cualquier bloqueo y une con la proyección.
func (uc *StockUseCase) views(ctx context.Context, query string) ([]stockView, error) {
	var (
		products []*entity.Product
		err      error
	)
	if query == "" {
		products, err = uc.productRepo.ListActive(ctx)
	} else {
		products, err = uc.productRepo.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	levels, err := uc.stockRepo.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	views := make([]stockView, 0, len(products))
	for _, p := range products {
		level, ok := levels[p.ID]
		if !ok {
			level = entity.StockLevel{ProductID: p.ID}
		}
		if err := uc.checkLevel(level); err != nil {
			return nil, err
		}
		views = append(views, stockView{product: p, level: level})
	}
	return views, nil
}

func (uc *StockUseCase) checkLevel(level entity.StockLevel) error {
	if err := inventory.CheckNonNegative(level); err != nil {
		uc.metrics.InvariantViolation()
		uc.log.Error().Err(err).Int64("product_id", level.ProductID).Msg("existencias negativas en la proyección")
		return err
	}
	return nil
}

func toStockResponse(v stockView) dto.StockResponse {
	return dto.StockResponse{
		ProductID:    v.product.ID,
		SKU:          v.product.SKU,
		Name:         v.product.Name,
		Unit:         v.product.Unit,
		MinTotal:     v.product.MinTotal,
		Active:       v.product.Active,
		BackroomQty:  v.level.Backroom,
		ShopfloorQty: v.level.Shopfloor,
		TotalQty:     v.level.Total(),
		Low:          v.level.Low(v.product.MinTotal),
		UpdatedAt:    v.level.UpdatedAt,
	}
}
