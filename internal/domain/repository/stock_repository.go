package repository

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// StockRepository mantiene la proyección materializada de existencias por producto.
// Solo se escribe dentro de TxRunner.RunForProduct, junto con el Append correspondiente.
type StockRepository interface {
	// Get devuelve el nivel del producto (ceros si aún no hay proyección).
	Get(ctx context.Context, productID int64) (entity.StockLevel, error)
	Save(ctx context.Context, level entity.StockLevel) error
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64]entity.StockLevel, error)
}
