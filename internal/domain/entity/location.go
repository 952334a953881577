package entity

import (
	"fmt"
	"strings"
)

// Location es una de las dos ubicaciones físicas de la tienda. Enumeración cerrada:
// el valor cero (LocationNone) representa "sin ubicación" en los movimientos.
type Location uint8

const (
	LocationNone Location = iota
	Backroom              // bodega trasera
	Shopfloor             // piso de venta
)

// Locations lista las ubicaciones válidas en orden estable.
var Locations = []Location{Backroom, Shopfloor}

func (l Location) String() string {
	switch l {
	case LocationNone:
		return ""
	case Backroom:
		return "BACKROOM"
	case Shopfloor:
		return "SHOPFLOOR"
	}
	return fmt.Sprintf("Location(%d)", uint8(l))
}

// Valid indica si l es una ubicación real (no LocationNone ni un valor fuera de rango).
func (l Location) Valid() bool {
	return l == Backroom || l == Shopfloor
}

// ParseLocation interpreta el nombre de una ubicación sin distinguir mayúsculas.
func ParseLocation(s string) (Location, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return LocationNone, nil
	case "BACKROOM":
		return Backroom, nil
	case "SHOPFLOOR":
		return Shopfloor, nil
	}
	return LocationNone, fmt.Errorf("ubicación desconocida %q", s)
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(b []byte) error {
	parsed, err := ParseLocation(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
