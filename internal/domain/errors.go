package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductInactive    = errors.New("producto inactivo")
	ErrImportInProgress   = errors.New("importación en curso para el mismo archivo")
	ErrInvariantViolation = errors.New("violación de invariante interna")
)

// ValidationError indica la regla concreta que incumple la entrada. Se rechaza antes de escribir en el ledger.
type ValidationError struct {
	Field string
	Rule  string
}

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Rule
	}
	return e.Field + ": " + e.Rule
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// InsufficientStockError detalla qué ubicación no alcanza para la operación solicitada.
type InsufficientStockError struct {
	ProductID int64
	Location  string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: producto %d en %s (disponible %d, solicitado %d)",
		e.ProductID, e.Location, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvariantViolationError señala un estado derivado imposible (p. ej. cantidad negativa).
// No es un error del usuario: indica un defecto en el motor de movimientos o en la concurrencia.
type InvariantViolationError struct {
	ProductID int64
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariante violada en producto %d: %s", e.ProductID, e.Detail)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }
