package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// Orden en que una venta importada descuenta existencias: primero piso de venta, luego bodega.
var saleDrawOrder = []entity.Location{entity.Shopfloor, entity.Backroom}

// MovementUseCase es el motor de movimientos: valida, comprueba suficiencia y anexa al ledger
// actualizando la proyección de existencias en la misma transacción por producto.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	ledger      repository.MovementRepository
	metrics     Metrics
	log         *logger.Logger
}

// NewMovementUseCase construye el motor. metrics puede ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	ledger repository.MovementRepository,
	metrics Metrics,
	log *logger.Logger,
) *MovementUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &MovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		ledger:      ledger,
		metrics:     metrics,
		log:         log,
	}
}

// Receipt registra una entrada de mercancía en toLocation.
func (uc *MovementUseCase) Receipt(ctx context.Context, productID, qty int64, to entity.Location, note string) (*entity.Movement, error) {
	return uc.commit(ctx, &entity.Movement{
		ProductID:  productID,
		Type:       entity.MovementReceipt,
		Quantity:   qty,
		ToLocation: to,
		Note:       note,
	})
}

// Issue registra una salida desde fromLocation. Falla con InsufficientStockError si no alcanza.
func (uc *MovementUseCase) Issue(ctx context.Context, productID, qty int64, from entity.Location, note string) (*entity.Movement, error) {
	return uc.commit(ctx, &entity.Movement{
		ProductID:    productID,
		Type:         entity.MovementIssue,
		Quantity:     qty,
		FromLocation: from,
		Note:         note,
	})
}

// Transfer mueve qty de from a to en un único movimiento.
func (uc *MovementUseCase) Transfer(ctx context.Context, productID, qty int64, from, to entity.Location, note string) (*entity.Movement, error) {
	return uc.commit(ctx, &entity.Movement{
		ProductID:    productID,
		Type:         entity.MovementTransfer,
		Quantity:     qty,
		FromLocation: from,
		ToLocation:   to,
		Note:         note,
	})
}

// History devuelve el ledger de un producto en orden (occurredAt, id).
func (uc *MovementUseCase) History(ctx context.Context, productID int64) ([]*entity.Movement, error) {
	if productID <= 0 {
		return nil, domain.NewValidationError("productId", "es requerido")
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	return uc.ledger.ListByProduct(ctx, productID)
}

// commit valida la forma, consulta el registro fuera del bloqueo y luego, ya serializado por producto,
// vuelve a leer existencias, comprueba suficiencia, anexa y guarda la proyección.
func (uc *MovementUseCase) commit(ctx context.Context, m *entity.Movement) (*entity.Movement, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, m.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", m.ProductID, domain.ErrNotFound)
	}
	if !product.Active {
		return nil, fmt.Errorf("producto %s: %w", product.SKU, domain.ErrProductInactive)
	}

	err = uc.txRunner.RunForProduct(ctx, m.ProductID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		level, err := stockRepo.Get(ctx, m.ProductID)
		if err != nil {
			return err
		}
		if err := inventory.CheckNonNegative(level); err != nil {
			return err
		}
		if m.FromLocation != entity.LocationNone {
			if available := level.At(m.FromLocation); available < m.Quantity {
				return &domain.InsufficientStockError{
					ProductID: m.ProductID,
					Location:  m.FromLocation.String(),
					Available: available,
					Requested: m.Quantity,
				}
			}
		}
		return appendAndProject(ctx, movRepo, stockRepo, level, m)
	})
	if err != nil {
		uc.observeFailure(m, err)
		return nil, err
	}

	uc.metrics.MovementRecorded(m.Type)
	uc.log.Info().
		Int64("movement_id", m.ID).
		Int64("product_id", m.ProductID).
		Str("type", m.Type.String()).
		Int64("qty", m.Quantity).
		Msg("movimiento registrado")
	return m, nil
}

// AppliedByReference totales ya escritos en el ledger con esa referencia (ID de lote).
func (uc *MovementUseCase) AppliedByReference(ctx context.Context, reference string) (int, int64, error) {
	return uc.ledger.TotalsByReference(ctx, reference)
}

// DrawForSale descuenta qty como SALE_IMPORT, primero del piso de venta y el resto de bodega.
// Con allowPartial aplica lo disponible y devuelve cuánto aplicó; sin él, si el total no alcanza
// no escribe nada y devuelve InsufficientStockError. No exige producto activo.
func (uc *MovementUseCase) DrawForSale(ctx context.Context, productID, qty int64, note, reference string, allowPartial bool) (int64, []*entity.Movement, error) {
	if qty <= 0 {
		return 0, nil, domain.NewValidationError("qty", "debe ser mayor que 0")
	}
	var (
		applied int64
		created []*entity.Movement
	)
	err := uc.txRunner.RunForProduct(ctx, productID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		applied, created = 0, nil
		level, err := stockRepo.Get(ctx, productID)
		if err != nil {
			return err
		}
		if err := inventory.CheckNonNegative(level); err != nil {
			return err
		}
		if !allowPartial && level.Total() < qty {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Location:  entity.Shopfloor.String() + "+" + entity.Backroom.String(),
				Available: level.Total(),
				Requested: qty,
			}
		}

		remaining := qty
		for _, loc := range saleDrawOrder {
			take := min(remaining, level.At(loc))
			if take <= 0 {
				continue
			}
			m := &entity.Movement{
				ProductID:    productID,
				Type:         entity.MovementSaleImport,
				Quantity:     take,
				FromLocation: loc,
				Note:         note,
				Reference:    reference,
			}
			if err := m.Validate(); err != nil {
				return err
			}
			next, err := inventory.Apply(level, m)
			if err != nil {
				return err
			}
			if err := movRepo.Append(ctx, m); err != nil {
				return err
			}
			level = next
			level.UpdatedAt = m.OccurredAt
			remaining -= take
			applied += take
			created = append(created, m)
			if remaining == 0 {
				break
			}
		}
		if len(created) == 0 {
			return nil
		}
		return stockRepo.Save(ctx, level)
	})
	if err != nil {
		uc.observeFailure(&entity.Movement{ProductID: productID, Type: entity.MovementSaleImport, Quantity: qty}, err)
		return 0, nil, err
	}
	for _, m := range created {
		uc.metrics.MovementRecorded(m.Type)
	}
	if applied < qty {
		uc.metrics.InsufficientStock(entity.MovementSaleImport.String())
	}
	return applied, created, nil
}

func appendAndProject(ctx context.Context, movRepo repository.MovementRepository, stockRepo repository.StockRepository, level entity.StockLevel, m *entity.Movement) error {
	next, err := inventory.Apply(level, m)
	if err != nil {
		return err
	}
	if err := movRepo.Append(ctx, m); err != nil {
		return err
	}
	next.UpdatedAt = m.OccurredAt
	return stockRepo.Save(ctx, next)
}

func (uc *MovementUseCase) observeFailure(m *entity.Movement, err error) {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		uc.metrics.InsufficientStock(m.Type.String())
		uc.log.Warn().
			Int64("product_id", m.ProductID).
			Str("type", m.Type.String()).
			Str("location", insufficient.Location).
			Int64("available", insufficient.Available).
			Int64("requested", insufficient.Requested).
			Msg("stock insuficiente")
	case errors.Is(err, domain.ErrInvariantViolation):
		uc.metrics.InvariantViolation()
		uc.log.Error().Err(err).Int64("product_id", m.ProductID).Msg("invariante de existencias violada")
	}
}
