package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// countTarget línea del conteo ya resuelta contra el registro.
type countTarget struct {
	line    dto.StockCountLine
	product *entity.Product
}

// Count registra un conteo físico. Cada línea compara lo contado con las existencias del sistema
// leídas bajo el bloqueo del producto y, si difieren, anexa un RECEIPT (sobrante) o un ISSUE (faltante)
// en la ubicación contada. Todas las líneas se validan y resuelven antes de escribir.
// Los ajustes se permiten también en productos inactivos.
func (uc *MovementUseCase) Count(ctx context.Context, in dto.StockCountRequest) (*dto.StockCountResponse, error) {
	targets, err := uc.resolveCount(ctx, in.Lines)
	if err != nil {
		return nil, err
	}

	out := &dto.StockCountResponse{
		CountID: uuid.NewString(),
		Lines:   make([]dto.StockCountLineResult, 0, len(targets)),
	}
	note := "conteo físico"
	if n := strings.TrimSpace(in.Note); n != "" {
		note += ": " + n
	}
	for _, t := range targets {
		system, m, err := uc.adjustToCount(ctx, t.product.ID, t.line.Location, t.line.CountedQty, note, out.CountID)
		if err != nil {
			return nil, fmt.Errorf("conteo %s, sku %s: %w", out.CountID, t.product.SKU, err)
		}
		res := dto.StockCountLineResult{
			SKU:        t.product.SKU,
			ProductID:  t.product.ID,
			Location:   t.line.Location,
			SystemQty:  system,
			CountedQty: t.line.CountedQty,
			Difference: t.line.CountedQty - system,
		}
		out.TotalPositions++
		if m != nil {
			res.MovementID = &m.ID
			out.PositionsWithDifference++
			if res.Difference > 0 {
				out.TotalPositiveDifference += res.Difference
			} else {
				out.TotalNegativeDifference += -res.Difference
			}
		}
		out.Lines = append(out.Lines, res)
	}

	uc.log.Info().
		Str("count_id", out.CountID).
		Int("positions", out.TotalPositions).
		Int("with_difference", out.PositionsWithDifference).
		Int64("positive", out.TotalPositiveDifference).
		Int64("negative", out.TotalNegativeDifference).
		Msg("conteo físico registrado")
	return out, nil
}

func (uc *MovementUseCase) resolveCount(ctx context.Context, lines []dto.StockCountLine) ([]countTarget, error) {
	if len(lines) == 0 {
		return nil, domain.NewValidationError("lines", "debe tener al menos una línea")
	}
	type position struct {
		sku string
		loc entity.Location
	}
	seen := make(map[position]bool, len(lines))
	targets := make([]countTarget, 0, len(lines))
	for i, line := range lines {
		field := fmt.Sprintf("lines[%d]", i)
		line.SKU = strings.TrimSpace(line.SKU)
		if line.SKU == "" {
			return nil, domain.NewValidationError(field+".sku", "es requerido")
		}
		if !line.Location.Valid() {
			return nil, domain.NewValidationError(field+".location", "debe ser BACKROOM o SHOPFLOOR")
		}
		if line.CountedQty < 0 {
			return nil, domain.NewValidationError(field+".countedQty", "no puede ser negativa")
		}
		pos := position{sku: line.SKU, loc: line.Location}
		if seen[pos] {
			return nil, domain.NewValidationError(field, "sku y ubicación repetidos en el conteo")
		}
		seen[pos] = true

		product, err := uc.productRepo.GetBySKU(ctx, line.SKU)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("sku %s: %w", line.SKU, domain.ErrNotFound)
		}
		targets = append(targets, countTarget{line: line, product: product})
	}
	return targets, nil
}

// adjustToCount devuelve la cantidad del sistema en loc y el movimiento de ajuste (nil si no hubo diferencia).
func (uc *MovementUseCase) adjustToCount(ctx context.Context, productID int64, loc entity.Location, counted int64, note, reference string) (int64, *entity.Movement, error) {
	var (
		system int64
		adjust *entity.Movement
	)
	err := uc.txRunner.RunForProduct(ctx, productID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		adjust = nil
		level, err := stockRepo.Get(ctx, productID)
		if err != nil {
			return err
		}
		if err := inventory.CheckNonNegative(level); err != nil {
			return err
		}
		system = level.At(loc)
		diff := counted - system
		if diff == 0 {
			return nil
		}
		m := &entity.Movement{ProductID: productID, Note: note, Reference: reference}
		if diff > 0 {
			m.Type, m.Quantity, m.ToLocation = entity.MovementReceipt, diff, loc
		} else {
			m.Type, m.Quantity, m.FromLocation = entity.MovementIssue, -diff, loc
		}
		if err := appendAndProject(ctx, movRepo, stockRepo, level, m); err != nil {
			return err
		}
		adjust = m
		return nil
	})
	if err != nil {
		uc.observeFailure(&entity.Movement{ProductID: productID, Type: entity.MovementIssue}, err)
		return 0, nil, err
	}
	if adjust != nil {
		uc.metrics.MovementRecorded(adjust.Type)
	}
	return system, adjust, nil
}
