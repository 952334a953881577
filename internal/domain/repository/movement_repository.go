package repository

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ProductQuantity cantidad agregada por producto (reportes).
type ProductQuantity struct {
	ProductID int64
	Quantity  int64
}

// MovementRepository es el ledger: almacén de solo anexado de movimientos.
// No expone actualización ni borrado.
type MovementRepository interface {
	// Append valida y persiste el movimiento, asignando ID creciente y OccurredAt si no viene.
	// OccurredAt nunca retrocede dentro de un mismo producto.
	Append(ctx context.Context, movement *entity.Movement) error
	// ListByProduct devuelve los movimientos del producto ordenados por (OccurredAt, ID) ascendente.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Movement, error)
	// ProductIDs devuelve los productos que tienen al menos un movimiento.
	ProductIDs(ctx context.Context) ([]int64, error)
	// SumByType agrega cantidades por producto para un tipo, de mayor a menor.
	SumByType(ctx context.Context, movementType entity.MovementType, limit int) ([]ProductQuantity, error)
	// TotalsByReference cuenta los movimientos con esa referencia y suma sus cantidades.
	TotalsByReference(ctx context.Context, reference string) (movements int, quantity int64, err error)
}
