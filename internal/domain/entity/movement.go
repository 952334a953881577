package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain"
)

// MovementType es el tipo de movimiento de inventario (enumeración cerrada).
type MovementType uint8

const (
	MovementReceipt    MovementType = iota + 1 // entrada
	MovementIssue                              // salida
	MovementTransfer                           // traslado entre ubicaciones
	MovementSaleImport                         // venta importada desde el POS
)

func (t MovementType) String() string {
	switch t {
	case MovementReceipt:
		return "RECEIPT"
	case MovementIssue:
		return "ISSUE"
	case MovementTransfer:
		return "TRANSFER"
	case MovementSaleImport:
		return "SALE_IMPORT"
	}
	return fmt.Sprintf("MovementType(%d)", uint8(t))
}

// ParseMovementType interpreta el nombre persistido de un tipo de movimiento.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RECEIPT":
		return MovementReceipt, nil
	case "ISSUE":
		return MovementIssue, nil
	case "TRANSFER":
		return MovementTransfer, nil
	case "SALE_IMPORT":
		return MovementSaleImport, nil
	}
	return 0, fmt.Errorf("tipo de movimiento desconocido %q", s)
}

func (t MovementType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *MovementType) UnmarshalText(b []byte) error {
	parsed, err := ParseMovementType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Movement es un registro inmutable del ledger. Las correcciones se hacen con movimientos compensatorios.
type Movement struct {
	ID           int64 // asignado por el ledger, estrictamente creciente
	ProductID    int64
	Type         MovementType
	Quantity     int64 // siempre > 0
	FromLocation Location
	ToLocation   Location
	OccurredAt   time.Time
	Note         string
	Reference    string // ID del lote de importación para SALE_IMPORT
}

// Validate comprueba la forma del movimiento según su tipo antes de anexarlo al ledger.
func (m *Movement) Validate() error {
	if m.ProductID <= 0 {
		return domain.NewValidationError("productId", "es requerido")
	}
	if m.Quantity <= 0 {
		return domain.NewValidationError("qty", "debe ser mayor que 0")
	}
	switch m.Type {
	case MovementReceipt:
		if !m.ToLocation.Valid() {
			return domain.NewValidationError("toLocation", "es requerida para RECEIPT")
		}
		if m.FromLocation != LocationNone {
			return domain.NewValidationError("fromLocation", "no aplica para RECEIPT")
		}
	case MovementIssue, MovementSaleImport:
		if !m.FromLocation.Valid() {
			return domain.NewValidationError("fromLocation", "es requerida para "+m.Type.String())
		}
		if m.ToLocation != LocationNone {
			return domain.NewValidationError("toLocation", "no aplica para "+m.Type.String())
		}
	case MovementTransfer:
		if !m.FromLocation.Valid() {
			return domain.NewValidationError("from", "es requerida para TRANSFER")
		}
		if !m.ToLocation.Valid() {
			return domain.NewValidationError("to", "es requerida para TRANSFER")
		}
		if m.FromLocation == m.ToLocation {
			return domain.NewValidationError("to", "debe ser distinta de from")
		}
	default:
		return domain.NewValidationError("type", "tipo de movimiento desconocido")
	}
	return nil
}
