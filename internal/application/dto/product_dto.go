package dto

import "time"

// CreateProductRequest entrada para POST /api/products.
type CreateProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	MinTotal int64  `json:"minTotal"`
}

// UpdateProductRequest actualización parcial; los campos nulos no se tocan.
type UpdateProductRequest struct {
	SKU      *string `json:"sku"`
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	MinTotal *int64  `json:"minTotal"`
}

// ProductResponse salida de un producto del registro.
type ProductResponse struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	MinTotal  int64     `json:"minTotal"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
