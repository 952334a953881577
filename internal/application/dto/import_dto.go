package dto

import (
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ImportBatchResponse resultado de POST /api/sales-imports (y de las consultas de historial).
type ImportBatchResponse struct {
	ID                     string                   `json:"id"`
	SHA256                 string                   `json:"sha256"`
	Filename               string                   `json:"filename,omitempty"`
	Status                 entity.ImportStatus      `json:"status"`
	RowsRead               int                      `json:"rowsRead"`
	RowsValid              int                      `json:"rowsValid"`
	RowsInvalid            int                      `json:"rowsInvalid"`
	RowsUnknownSKU         int                      `json:"rowsUnknownSku"`
	MovementsCreated       int                      `json:"movementsCreated"`
	TotalQuantityRequested int64                    `json:"totalQuantityRequested"`
	TotalQuantityApplied   int64                    `json:"totalQuantityApplied"`
	Shortfalls             []entity.ImportShortfall `json:"shortfalls"`
	Error                  string                   `json:"error,omitempty"`
	CreatedAt              time.Time                `json:"createdAt"`
	FinishedAt             *time.Time               `json:"finishedAt,omitempty"`
}

// ImportBatchFromEntity convierte el lote persistido en la respuesta HTTP.
func ImportBatchFromEntity(b *entity.ImportBatch) ImportBatchResponse {
	shortfalls := b.Shortfalls
	if shortfalls == nil {
		shortfalls = []entity.ImportShortfall{}
	}
	return ImportBatchResponse{
		ID:                     b.ID,
		SHA256:                 b.SHA256,
		Filename:               b.Filename,
		Status:                 b.Status,
		RowsRead:               b.RowsRead,
		RowsValid:              b.RowsValid,
		RowsInvalid:            b.RowsInvalid,
		RowsUnknownSKU:         b.RowsUnknownSKU,
		MovementsCreated:       b.MovementsCreated,
		TotalQuantityRequested: b.TotalQuantityRequested,
		TotalQuantityApplied:   b.TotalQuantityApplied,
		Shortfalls:             shortfalls,
		Error:                  b.Error,
		CreatedAt:              b.CreatedAt,
		FinishedAt:             b.FinishedAt,
	}
}
