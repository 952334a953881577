package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
)

// OrderSuggestionHandler lista de reposición y sus exportaciones.
type OrderSuggestionHandler struct {
	uc  *inventory.OrderSuggestionUseCase
	now func() time.Time
}

// NewOrderSuggestionHandler construye el handler.
func NewOrderSuggestionHandler(uc *inventory.OrderSuggestionUseCase) *OrderSuggestionHandler {
	return &OrderSuggestionHandler{uc: uc, now: time.Now}
}

// List godoc
// @Summary      Sugerencias de pedido
// @Description  Todos los productos activos (o los que coinciden con query) con la cantidad sugerida max(0, mínimo - total).
// @Tags         order-suggestions
// @Produce      json
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {object}  dto.ListResponse[dto.OrderSuggestionRow]
// @Router       /api/order-suggestions [get]
func (h *OrderSuggestionHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(rows))
}

// ExportCSV godoc
// @Summary      Exportar lista de reposición (CSV)
// @Description  Solo productos con cantidad sugerida > 0, de mayor a menor sugerido y luego por SKU.
// @Tags         order-suggestions
// @Produce      text/csv
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {file}  file
// @Router       /api/order-suggestions/export [get]
func (h *OrderSuggestionHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.uc.ExportCSV(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return h.attachment(c, out, "text/csv; charset=utf-8", "csv")
}

// ExportXLSX godoc
// @Summary      Exportar lista de reposición (Excel)
// @Tags         order-suggestions
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {file}  file
// @Router       /api/order-suggestions/export.xlsx [get]
func (h *OrderSuggestionHandler) ExportXLSX(c *fiber.Ctx) error {
	out, err := h.uc.ExportXLSX(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return h.attachment(c, out, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

// ExportPDF godoc
// @Summary      Exportar lista de reposición (PDF)
// @Tags         order-suggestions
// @Produce      application/pdf
// @Param        query  query  string  false  "Subcadena de SKU o nombre"
// @Success      200    {file}  file
// @Router       /api/order-suggestions/export.pdf [get]
func (h *OrderSuggestionHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF(c.UserContext(), c.Query("query"))
	if err != nil {
		return err
	}
	return h.attachment(c, out, "application/pdf", "pdf")
}

func (h *OrderSuggestionHandler) attachment(c *fiber.Ctx, body []byte, contentType, ext string) error {
	c.Attachment("reposicion-" + h.now().Format("2006-01-02") + "." + ext)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
