// Package inventory contiene la lógica pura del ledger: plegado de movimientos en existencias
// y aritmética de sugerencias de pedido. No conoce persistencia ni concurrencia.
package inventory

import (
	"fmt"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// Apply aplica un movimiento sobre un nivel de existencias y devuelve el nuevo nivel.
//
//	RECEIPT      +qty en toLocation
//	ISSUE        -qty en fromLocation
//	TRANSFER     -qty en fromLocation, +qty en toLocation
//	SALE_IMPORT  -qty en fromLocation
//
// Un resultado negativo es una violación de invariante: el motor de movimientos nunca debió aceptarlo.
func Apply(level entity.StockLevel, m *entity.Movement) (entity.StockLevel, error) {
	if m.ProductID != level.ProductID {
		return level, &domain.InvariantViolationError{
			ProductID: level.ProductID,
			Detail:    fmt.Sprintf("movimiento %d pertenece al producto %d", m.ID, m.ProductID),
		}
	}
	if m.Quantity <= 0 {
		return level, &domain.InvariantViolationError{
			ProductID: level.ProductID,
			Detail:    fmt.Sprintf("movimiento %d con cantidad %d", m.ID, m.Quantity),
		}
	}

	next := level
	switch m.Type {
	case entity.MovementReceipt:
		next = next.Add(m.ToLocation, m.Quantity)
	case entity.MovementIssue, entity.MovementSaleImport:
		next = next.Add(m.FromLocation, -m.Quantity)
	case entity.MovementTransfer:
		next = next.Add(m.FromLocation, -m.Quantity).Add(m.ToLocation, m.Quantity)
	default:
		return level, &domain.InvariantViolationError{
			ProductID: level.ProductID,
			Detail:    fmt.Sprintf("movimiento %d con tipo desconocido %s", m.ID, m.Type),
		}
	}
	if err := CheckNonNegative(next); err != nil {
		return level, fmt.Errorf("movimiento %d: %w", m.ID, err)
	}
	return next, nil
}

// Replay pliega todos los movimientos (ya ordenados por OccurredAt, ID) desde existencias cero.
func Replay(productID int64, movements []*entity.Movement) (entity.StockLevel, error) {
	level := entity.StockLevel{ProductID: productID}
	for _, m := range movements {
		var err error
		level, err = Apply(level, m)
		if err != nil {
			return entity.StockLevel{ProductID: productID}, err
		}
		level.UpdatedAt = m.OccurredAt
	}
	return level, nil
}

// CheckNonNegative falla si alguna ubicación quedó negativa. No recorta el valor.
func CheckNonNegative(level entity.StockLevel) error {
	for _, loc := range entity.Locations {
		if q := level.At(loc); q < 0 {
			return &domain.InvariantViolationError{
				ProductID: level.ProductID,
				Detail:    fmt.Sprintf("cantidad negativa %d en %s", q, loc),
			}
		}
	}
	return nil
}
