package salesimport

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ErrLockNotObtained el candado del lote sigue tomado por otro proceso tras la espera.
var ErrLockNotObtained = errors.New("candado de importación no obtenido")

// BatchLocker candado distribuido por SHA-256 para que dos réplicas no procesen el mismo archivo.
// Acquire espera hasta wait; devuelve ErrLockNotObtained si no lo consigue.
type BatchLocker interface {
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (release func(context.Context) error, err error)
}

// Metrics observa el resultado de los lotes.
type Metrics interface {
	ImportFinished(status entity.ImportStatus)
}

type nopMetrics struct{}

func (nopMetrics) ImportFinished(entity.ImportStatus) {}

// Policy define qué hacer cuando una fila no tiene existencias suficientes.
type Policy string

const (
	// PolicyBestEffort aplica lo disponible y registra el faltante.
	PolicyBestEffort Policy = "best_effort"
	// PolicyStrict detiene el lote en la primera fila sin existencias suficientes.
	PolicyStrict Policy = "strict"
)

// ParsePolicy interpreta IMPORT_POLICY; vacío equivale a best_effort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyBestEffort:
		return PolicyBestEffort, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", errors.New("IMPORT_POLICY desconocida: " + s)
}

// StockDrawer descuenta ventas de las existencias (implementado por el motor de movimientos).
type StockDrawer interface {
	DrawForSale(ctx context.Context, productID, qty int64, note, reference string, allowPartial bool) (applied int64, created []*entity.Movement, err error)
	// AppliedByReference cuenta y suma los movimientos ya escritos con esa referencia.
	AppliedByReference(ctx context.Context, reference string) (movements int, quantity int64, err error)
}
