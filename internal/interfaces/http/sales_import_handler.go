package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// HeaderImportDuplicate marca la respuesta de un archivo ya procesado.
const HeaderImportDuplicate = "X-Import-Duplicate"

// SalesImportHandler recibe los archivos de ventas del POS.
type SalesImportHandler struct {
	uc *salesimport.UseCase
}

// NewSalesImportHandler construye el handler.
func NewSalesImportHandler(uc *salesimport.UseCase) *SalesImportHandler {
	return &SalesImportHandler{uc: uc}
}

// Upload godoc
// @Summary      Importar ventas (CSV SKU,cantidad)
// @Description  Descuenta las ventas del piso de venta y luego de bodega. Un archivo con el mismo contenido
// @Description  no se vuelve a aplicar: devuelve 200 con el resultado registrado y X-Import-Duplicate: true.
// @Tags         sales-imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      201   {object}  dto.ImportBatchResponse
// @Success      200   {object}  dto.ImportBatchResponse  "Archivo ya importado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "El mismo archivo se está procesando"
// @Router       /api/sales-imports [post]
func (h *SalesImportHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest("file", "se espera un archivo en el campo multipart 'file'")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest("file", "no se pudo leer el archivo")
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return badRequest("file", "no se pudo leer el archivo")
	}

	res, err := h.uc.Import(c.UserContext(), fh.Filename, raw)
	if err != nil {
		return err
	}
	if res.Duplicate {
		c.Set(HeaderImportDuplicate, "true")
		return c.Status(fiber.StatusOK).JSON(dto.ImportBatchFromEntity(res.Batch))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ImportBatchFromEntity(res.Batch))
}

// List godoc
// @Summary      Historial de importaciones
// @Tags         sales-imports
// @Produce      json
// @Param        limit  query  int  false  "Máximo de lotes (default 20, max 200)"
// @Success      200    {object}  dto.ListResponse[dto.ImportBatchResponse]
// @Router       /api/sales-imports [get]
func (h *SalesImportHandler) List(c *fiber.Ctx) error {
	batches, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(toBatchResponses(batches)))
}

// GetBySHA256 godoc
// @Summary      Consultar importación por SHA-256
// @Tags         sales-imports
// @Produce      json
// @Param        sha256  path  string  true  "SHA-256 del archivo (hex)"
// @Success      200     {object}  dto.ImportBatchResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/sales-imports/{sha256} [get]
func (h *SalesImportHandler) GetBySHA256(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.UserContext(), c.Params("sha256"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ImportBatchFromEntity(b))
}

func toBatchResponses(batches []*entity.ImportBatch) []dto.ImportBatchResponse {
	out := make([]dto.ImportBatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ImportBatchFromEntity(b))
	}
	return out
}
