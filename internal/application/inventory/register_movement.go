package inventory

import (
	"context"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// ReceiptFromRequest adapta el request HTTP a Receipt.
func (uc *MovementUseCase) ReceiptFromRequest(ctx context.Context, in dto.ReceiptRequest) (*dto.MovementResponse, error) {
	m, err := uc.Receipt(ctx, in.ProductID, in.Qty, in.ToLocation, in.Note)
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(m)
	return &out, nil
}

// IssueFromRequest adapta el request HTTP a Issue.
func (uc *MovementUseCase) IssueFromRequest(ctx context.Context, in dto.IssueRequest) (*dto.MovementResponse, error) {
	m, err := uc.Issue(ctx, in.ProductID, in.Qty, in.FromLocation, in.Note)
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(m)
	return &out, nil
}

// TransferFromRequest adapta el request HTTP a Transfer.
func (uc *MovementUseCase) TransferFromRequest(ctx context.Context, in dto.TransferRequest) (*dto.MovementResponse, error) {
	m, err := uc.Transfer(ctx, in.ProductID, in.Qty, in.From, in.To, in.Note)
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(m)
	return &out, nil
}

// HistoryResponse devuelve el historial del producto listo para serializar.
func (uc *MovementUseCase) HistoryResponse(ctx context.Context, productID int64) ([]dto.MovementResponse, error) {
	list, err := uc.History(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse convierte un movimiento del ledger; las ubicaciones ausentes se omiten.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Qty:        m.Quantity,
		OccurredAt: m.OccurredAt,
		Note:       m.Note,
		Reference:  m.Reference,
	}
	if m.FromLocation != entity.LocationNone {
		from := m.FromLocation
		out.FromLocation = &from
	}
	if m.ToLocation != entity.LocationNone {
		to := m.ToLocation
		out.ToLocation = &to
	}
	return out
}
