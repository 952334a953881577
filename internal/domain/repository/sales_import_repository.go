package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// SalesImportRepository persiste los lotes de importación indexados por SHA-256.
type SalesImportRepository interface {
	// Claim registra el lote en estado PROCESSING de forma atómica por SHA-256.
	// Si ya existe un lote con el mismo hash lo devuelve y no reclama nada.
	Claim(ctx context.Context, batch *entity.ImportBatch) (existing *entity.ImportBatch, err error)
	// Reopen vuelve a poner en PROCESSING un lote existente (mismo ID) con los datos de batch, solo si
	// sigue en el estado from y con la fecha de creación claimedAt. false si otro proceso se adelantó.
	Reopen(ctx context.Context, batch *entity.ImportBatch, from entity.ImportStatus, claimedAt time.Time) (bool, error)
	// Finish guarda el resultado terminal del lote reclamado.
	Finish(ctx context.Context, batch *entity.ImportBatch) error
	GetBySHA256(ctx context.Context, sha256 string) (*entity.ImportBatch, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.ImportBatch, error)
}
