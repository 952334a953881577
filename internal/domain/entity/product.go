package entity

import "time"

// Product representa un producto del catálogo (registro externo al núcleo de inventario).
// El motor de movimientos solo lo lee por ID o SKU; nunca lo modifica.
type Product struct {
	ID        int64
	SKU       string // único e inmutable para el núcleo
	Name      string
	Unit      string
	MinTotal  int64 // mínimo total entre ambas ubicaciones
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
