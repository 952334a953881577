// Package analytics contiene los reportes de negocio derivados del ledger.
package analytics

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

const (
	defaultTopSales = 10
	maxTopSales     = 100
)

// TopSalesUseCase ranking de productos por unidades vendidas (movimientos SALE_IMPORT).
//
// Fuente de datos: el ledger (consulta read-only) unido con el registro para SKU y nombre.
type TopSalesUseCase struct {
	ledger      repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewTopSalesUseCase construye el caso de uso.
func NewTopSalesUseCase(ledger repository.MovementRepository, productRepo repository.ProductRepository) *TopSalesUseCase {
	return &TopSalesUseCase{ledger: ledger, productRepo: productRepo}
}

// TopSales devuelve hasta limit productos ordenados por unidades vendidas desc (empates por id).
func (uc *TopSalesUseCase) TopSales(ctx context.Context, limit int) ([]dto.TopSaleDTO, error) {
	if limit <= 0 {
		limit = defaultTopSales
	}
	if limit > maxTopSales {
		limit = maxTopSales
	}
	totals, err := uc.ledger.SumByType(ctx, entity.MovementSaleImport, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSaleDTO, 0, len(totals))
	for i, t := range totals {
		item := dto.TopSaleDTO{Rank: i + 1, ProductID: t.ProductID, UnitsSold: t.Quantity}
		product, err := uc.productRepo.GetByID(ctx, t.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			item.SKU = product.SKU
			item.Name = product.Name
		}
		out = append(out, item)
	}
	return out, nil
}
