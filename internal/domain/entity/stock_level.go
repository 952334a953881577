package entity

import "time"

// StockLevel es la existencia derivada de un producto por ubicación.
// Es una proyección reconstruible desde el ledger, nunca la fuente de verdad.
type StockLevel struct {
	ProductID int64
	Backroom  int64
	Shopfloor int64
	UpdatedAt time.Time
}

// Total devuelve la suma de ambas ubicaciones.
func (s StockLevel) Total() int64 {
	return s.Backroom + s.Shopfloor
}

// At devuelve la cantidad en la ubicación indicada (0 para LocationNone).
func (s StockLevel) At(loc Location) int64 {
	switch loc {
	case Backroom:
		return s.Backroom
	case Shopfloor:
		return s.Shopfloor
	case LocationNone:
		return 0
	}
	return 0
}

// Add devuelve una copia con delta sumado en la ubicación indicada.
func (s StockLevel) Add(loc Location, delta int64) StockLevel {
	switch loc {
	case Backroom:
		s.Backroom += delta
	case Shopfloor:
		s.Shopfloor += delta
	case LocationNone:
	}
	return s
}

// Low indica si el total está por debajo del mínimo configurado.
func (s StockLevel) Low(minTotal int64) bool {
	return s.Total() < minTotal
}
