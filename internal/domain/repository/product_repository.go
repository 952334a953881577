package repository

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ProductRepository define el puerto del registro de productos (DIP).
// GetByID y GetBySKU devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// ListActive devuelve los productos activos ordenados por nombre.
	ListActive(ctx context.Context) ([]*entity.Product, error)
	// Search busca por subcadena de SKU o nombre (sin distinguir mayúsculas), activos e inactivos.
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}
