package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
)

// MovementHandler registra movimientos en el ledger y consulta su historial.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Receipt godoc
// @Summary      Registrar entrada
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptRequest  true  "productId, qty, toLocation (BACKROOM | SHOPFLOOR), note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/receipt [post]
func (h *MovementHandler) Receipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ReceiptFromRequest(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Issue godoc
// @Summary      Registrar salida
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "productId, qty, fromLocation, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente (category=stock)"
// @Router       /api/movements/issue [post]
func (h *MovementHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.IssueFromRequest(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transfer godoc
// @Summary      Trasladar entre ubicaciones
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "productId, qty, from, to, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente en origen (category=stock)"
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.TransferFromRequest(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        productId  query  int  true  "ID del producto"
// @Success      200        {object}  dto.ListResponse[dto.MovementResponse]
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	id, err := idQuery(c, "productId")
	if err != nil {
		return err
	}
	out, err := h.uc.HistoryResponse(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(out))
}

// Count godoc
// @Summary      Registrar conteo físico
// @Description  Ajusta cada posición contada con un RECEIPT (sobrante) o un ISSUE (faltante) en su ubicación.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockCountRequest  true  "lines [{sku, location, countedQty}], note"
// @Success      200   {object}  dto.StockCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "SKU inexistente"
// @Router       /api/stock-counts [post]
func (h *MovementHandler) Count(c *fiber.Ctx) error {
	var in dto.StockCountRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Count(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
