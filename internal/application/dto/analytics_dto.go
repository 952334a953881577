package dto

// TopSaleDTO unidades vendidas (importadas del POS) por producto.
type TopSaleDTO struct {
	Rank      int    `json:"rank"`
	ProductID int64  `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"unitsSold"`
}
