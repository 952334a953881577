package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
)

// StockHandler expone la proyección de existencias.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Existencias por producto
// @Tags         stocks
// @Produce      json
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {object}  dto.ListResponse[dto.StockResponse]
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(out))
}

// ListLow godoc
// @Summary      Productos bajo el mínimo
// @Tags         stocks
// @Produce      json
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {object}  dto.ListResponse[dto.StockResponse]
// @Router       /api/stocks/low [get]
func (h *StockHandler) ListLow(c *fiber.Ctx) error {
	out, err := h.uc.ListLow(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(out))
}

// GetByProduct godoc
// @Summary      Existencias de un producto
// @Tags         stocks
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200        {object}  dto.StockResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/stocks/{productId} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	out, err := h.uc.CurrentStock(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Rebuild godoc
// @Summary      Reconstruir existencias desde el ledger
// @Description  Reproduce los movimientos del producto, sobrescribe la proyección e informa si había diferencias.
// @Tags         stocks
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200        {object}  dto.StockRebuildResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/stocks/{productId}/rebuild [post]
func (h *StockHandler) Rebuild(c *fiber.Ctx) error {
	id, err := idParam(c, "productId")
	if err != nil {
		return err
	}
	out, err := h.uc.Rebuild(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
