package entity

import "time"

// ImportStatus es el estado de un lote de importación de ventas.
type ImportStatus string

const (
	ImportProcessing ImportStatus = "PROCESSING"
	ImportCompleted  ImportStatus = "COMPLETED"
	ImportFailed     ImportStatus = "FAILED"
)

// Terminal indica si el lote ya tiene un resultado definitivo.
// FAILED también es terminal: sus movimientos aplicados no deben repetirse.
func (s ImportStatus) Terminal() bool {
	return s == ImportCompleted || s == ImportFailed
}

// ImportShortfall registra una fila que no pudo descontarse completa.
type ImportShortfall struct {
	Line      int    `json:"line"`
	SKU       string `json:"sku"`
	Requested int64  `json:"requested"`
	Applied   int64  `json:"applied"`
}

// ImportBatch es el resultado de procesar un archivo de ventas, identificado por el SHA-256 de sus bytes.
type ImportBatch struct {
	ID                     string
	SHA256                 string
	Filename               string
	Status                 ImportStatus
	RowsRead               int
	RowsValid              int
	RowsInvalid            int
	RowsUnknownSKU         int
	MovementsCreated       int
	TotalQuantityRequested int64
	TotalQuantityApplied   int64
	Shortfalls             []ImportShortfall
	Error                  string
	CreatedAt              time.Time
	FinishedAt             *time.Time
}
