package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// ProductUseCase administración del registro de productos. Las existencias solo cambian vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create registra un producto activo. El SKU se normaliza quitando espacios y debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if err := validateProduct(sku, name, unit, in.MinTotal); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("sku %s: %w", sku, domain.ErrDuplicate)
	}
	now := uc.now()
	product := &entity.Product{
		SKU:       sku,
		Name:      name,
		Unit:      unit,
		MinTotal:  in.MinTotal,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Cambiar a un SKU existente es ErrDuplicate.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku != product.SKU {
			other, err := uc.repo.GetBySKU(ctx, sku)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, fmt.Errorf("sku %s: %w", sku, domain.ErrDuplicate)
			}
		}
		product.SKU = sku
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Unit != nil {
		product.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.MinTotal != nil {
		product.MinTotal = *in.MinTotal
	}
	if err := validateProduct(product.SKU, product.Name, product.Unit, product.MinTotal); err != nil {
		return nil, err
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate marca el producto como inactivo. Es idempotente.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return toProductResponse(product), nil
	}
	product.Active = false
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List sin query devuelve los activos por nombre; con query busca por SKU o nombre en todo el registro.
func (uc *ProductUseCase) List(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if q := strings.TrimSpace(query); q == "" {
		list, err = uc.repo.ListActive(ctx)
	} else {
		list, err = uc.repo.Search(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func validateProduct(sku, name, unit string, minTotal int64) error {
	switch {
	case sku == "":
		return domain.NewValidationError("sku", "es requerido")
	case name == "":
		return domain.NewValidationError("name", "es requerido")
	case unit == "":
		return domain.NewValidationError("unit", "es requerida")
	case minTotal < 0:
		return domain.NewValidationError("minTotal", "no puede ser negativo")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Unit:      p.Unit,
		MinTotal:  p.MinTotal,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
