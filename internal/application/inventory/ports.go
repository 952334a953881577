package inventory

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción serializada por producto,
// pasando repositorios atados a esa transacción. Dos llamadas con el mismo productID nunca
// se solapan; con productos distintos corren en paralelo.
// Si fn devuelve error no queda nada escrito (ni movimientos ni proyección).
type TxRunner interface {
	RunForProduct(ctx context.Context, productID int64, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// Metrics recibe los eventos del motor de movimientos.
type Metrics interface {
	MovementRecorded(movementType entity.MovementType)
	InsufficientStock(operation string)
	InvariantViolation()
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

func (NopMetrics) MovementRecorded(entity.MovementType) {}
func (NopMetrics) InsufficientStock(string)             {}
func (NopMetrics) InvariantViolation()                  {}

// SuggestionRenderer genera un documento descargable con las filas de reposición (XLSX, PDF).
type SuggestionRenderer interface {
	RenderOrderSuggestions(rows []dto.OrderSuggestionRow) ([]byte, error)
}
