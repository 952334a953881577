package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/analytics"
	"github.com/jhoicas/inventario-tienda/internal/application/dto"
)

// ReportHandler reportes derivados del ledger.
type ReportHandler struct {
	topSales *analytics.TopSalesUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(topSales *analytics.TopSalesUseCase) *ReportHandler {
	return &ReportHandler{topSales: topSales}
}

// TopSales godoc
// @Summary      Productos más vendidos
// @Description  Suma las unidades SALE_IMPORT por producto, de mayor a menor.
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Máximo de productos (default 10, max 100)"
// @Success      200    {object}  dto.ListResponse[dto.TopSaleDTO]
// @Router       /api/reports/top-sales [get]
func (h *ReportHandler) TopSales(c *fiber.Ctx) error {
	out, err := h.topSales.TopSales(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(out))
}
