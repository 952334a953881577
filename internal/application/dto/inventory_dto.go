package dto

import (
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ReceiptRequest body para POST /api/movements/receipt.
type ReceiptRequest struct {
	ProductID  int64           `json:"productId"`
	Qty        int64           `json:"qty"`
	ToLocation entity.Location `json:"toLocation"`
	Note       string          `json:"note,omitempty"`
}

// IssueRequest body para POST /api/movements/issue.
type IssueRequest struct {
	ProductID    int64           `json:"productId"`
	Qty          int64           `json:"qty"`
	FromLocation entity.Location `json:"fromLocation"`
	Note         string          `json:"note,omitempty"`
}

// TransferRequest body para POST /api/movements/transfer.
type TransferRequest struct {
	ProductID int64           `json:"productId"`
	Qty       int64           `json:"qty"`
	From      entity.Location `json:"from"`
	To        entity.Location `json:"to"`
	Note      string          `json:"note,omitempty"`
}

// MovementResponse movimiento del ledger tal como se expone al cliente.
type MovementResponse struct {
	ID           int64               `json:"id"`
	ProductID    int64               `json:"productId"`
	Type         entity.MovementType `json:"type"`
	Qty          int64               `json:"qty"`
	FromLocation *entity.Location    `json:"fromLocation,omitempty"`
	ToLocation   *entity.Location    `json:"toLocation,omitempty"`
	OccurredAt   time.Time           `json:"occurredAt"`
	Note         string              `json:"note,omitempty"`
	Reference    string              `json:"reference,omitempty"`
}

// StockResponse existencias de un producto unidas con los datos del registro.
type StockResponse struct {
	ProductID    int64     `json:"productId"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	MinTotal     int64     `json:"minTotal"`
	Active       bool      `json:"active"`
	BackroomQty  int64     `json:"backroomQty"`
	ShopfloorQty int64     `json:"shopfloorQty"`
	TotalQty     int64     `json:"totalQty"`
	Low          bool      `json:"low"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StockRebuildResponse resultado de reconstruir la proyección de un producto desde el ledger.
type StockRebuildResponse struct {
	ProductID         int64 `json:"productId"`
	Movements         int   `json:"movements"`
	PreviousBackroom  int64 `json:"previousBackroomQty"`
	PreviousShopfloor int64 `json:"previousShopfloorQty"`
	BackroomQty       int64 `json:"backroomQty"`
	ShopfloorQty      int64 `json:"shopfloorQty"`
	Drift             bool  `json:"drift"`
}

// OrderSuggestionRow fila de la lista de reposición.
type OrderSuggestionRow struct {
	ProductID    int64  `json:"productId"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	MinTotal     int64  `json:"minTotal"`
	BackroomQty  int64  `json:"backroomQty"`
	ShopfloorQty int64  `json:"shopfloorQty"`
	TotalQty     int64  `json:"totalQty"`
	SuggestedQty int64  `json:"suggestedQty"`
}

// StockCountLine cantidad contada físicamente de un producto en una ubicación.
type StockCountLine struct {
	SKU        string          `json:"sku"`
	Location   entity.Location `json:"location"`
	CountedQty int64           `json:"countedQty"`
}

type StockCountRequest struct {
	Lines []StockCountLine `json:"lines"`
	Note  string           `json:"note,omitempty"`
}

// StockCountLineResult diferencia de una línea; MovementID solo si hubo ajuste.
type StockCountLineResult struct {
	SKU        string          `json:"sku"`
	ProductID  int64           `json:"productId"`
	Location   entity.Location `json:"location"`
	SystemQty  int64           `json:"systemQty"`
	CountedQty int64           `json:"countedQty"`
	Difference int64           `json:"difference"`
	MovementID *int64          `json:"movementId,omitempty"`
}

type StockCountResponse struct {
	CountID                 string                 `json:"countId"`
	TotalPositions          int                    `json:"totalPositions"`
	PositionsWithDifference int                    `json:"positionsWithDifference"`
	TotalPositiveDifference int64                  `json:"totalPositiveDifference"`
	TotalNegativeDifference int64                  `json:"totalNegativeDifference"`
	Lines                   []StockCountLineResult `json:"lines"`
}
