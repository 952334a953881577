package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository registro de productos en memoria.
type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bySKU[p.SKU]; ok {
		return fmt.Errorf("sku %s: %w", p.SKU, domain.ErrDuplicate)
	}
	r.s.lastProductID++
	p.ID = r.s.lastProductID
	now := r.s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	r.s.products[p.ID] = cloneProduct(p)
	r.s.bySKU[p.SKU] = p.ID
	r.s.stocks[p.ID] = entity.StockLevel{ProductID: p.ID, UpdatedAt: now}
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.bySKU[sku]
	if !ok {
		return nil, nil
	}
	return cloneProduct(r.s.products[id]), nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[p.ID]
	if !ok {
		return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
	}
	if p.SKU != current.SKU {
		if _, taken := r.s.bySKU[p.SKU]; taken {
			return fmt.Errorf("sku %s: %w", p.SKU, domain.ErrDuplicate)
		}
		delete(r.s.bySKU, current.SKU)
		r.s.bySKU[p.SKU] = p.ID
	}
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepository) ListActive(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if p.Active {
			out = append(out, cloneProduct(p))
		}
	}
	sortByName(out)
	return out, nil
}

func (r *ProductRepository) Search(_ context.Context, query string) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if strings.Contains(fold.String(p.SKU), needle) || strings.Contains(fold.String(p.Name), needle) {
			out = append(out, cloneProduct(p))
		}
	}
	sortByName(out)
	return out, nil
}

func sortByName(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}
