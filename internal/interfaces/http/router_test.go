package http_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/analytics"
	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-tienda/internal/interfaces/http"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()

	engine := inventory.NewMovementUseCase(store.TxRunner(), store.Products(), store.Movements(), nil, log)
	stock := inventory.NewStockUseCase(store.TxRunner(), store.Products(), store.Stocks(), store.Movements(), nil, log)
	importer := salesimport.NewUseCase(store.Products(), store.SalesImports(), engine, nil, nil, log, salesimport.Config{
		Policy:   salesimport.PolicyBestEffort,
		MaxBytes: 1 << 20,
	})

	app := apphttp.NewApp(apphttp.AppConfig{Name: "test", BodyLimit: 2 << 20}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products()),
		Movements:   engine,
		Stock:       stock,
		Suggestions: inventory.NewOrderSuggestionUseCase(stock, excel.NewOrderSuggestionXLSX(), pdf.NewOrderSuggestionPDF("Tienda")),
		SalesImport: importer,
		TopSales:    analytics.NewTopSalesUseCase(store.Movements(), store.Products()),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createProduct(t *testing.T, app *fiber.App, sku string, minTotal int64) dto.ProductResponse {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/products", map[string]any{"sku": sku, "name": "Producto " + sku, "unit": "und", "minTotal": minTotal})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func receipt(t *testing.T, app *fiber.App, productID int64, qty int64, to string) {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/movements/receipt", map[string]any{"productId": productID, "qty": qty, "toLocation": to})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestProductos(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "CAFE-01", 5)
	assert.NotZero(t, p.ID)
	assert.True(t, p.Active)

	resp := do(t, app, http.MethodPost, "/api/products", map[string]any{"sku": "CAFE-01", "name": "otro", "unit": "und"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", decode[dto.ErrorResponse](t, resp).Category)

	resp = do(t, app, http.MethodPost, "/api/products", map[string]any{"sku": "X", "name": "", "unit": "und"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decode[dto.ErrorResponse](t, resp).Category)

	resp = do(t, app, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[dto.ErrorResponse](t, resp).Category)

	resp = do(t, app, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPut, "/api/products/1", map[string]any{"name": "Café molido"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Café molido", decode[dto.ProductResponse](t, resp).Name)

	resp = do(t, app, http.MethodPost, "/api/products/1/deactivate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.ProductResponse](t, resp).Active)

	resp = do(t, app, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.ListResponse[dto.ProductResponse]](t, resp).Count)

	resp = do(t, app, http.MethodGet, "/api/products?query=cafe", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.ProductResponse]](t, resp).Count)
}

func TestMovimientos(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "P", 0)

	resp := do(t, app, http.MethodPost, "/api/movements/receipt", map[string]any{"productId": p.ID, "qty": 10, "toLocation": "BACKROOM", "note": "proveedor"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	m := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "RECEIPT", m.Type.String())
	require.NotNil(t, m.ToLocation)
	assert.Nil(t, m.FromLocation)

	resp = do(t, app, http.MethodPost, "/api/movements/transfer", map[string]any{"productId": p.ID, "qty": 4, "from": "BACKROOM", "to": "SHOPFLOOR"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, "/api/movements/issue", map[string]any{"productId": p.ID, "qty": 5, "fromLocation": "SHOPFLOOR"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "stock", body.Category)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)

	resp = do(t, app, http.MethodPost, "/api/movements/transfer", map[string]any{"productId": p.ID, "qty": 1, "from": "BACKROOM", "to": "BACKROOM"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decode[dto.ErrorResponse](t, resp).Category)

	resp = do(t, app, http.MethodPost, "/api/movements/receipt", map[string]any{"productId": p.ID, "qty": 1, "toLocation": "GARAGE"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, "/api/movements/receipt", map[string]any{"productId": 999, "qty": 1, "toLocation": "BACKROOM"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/movements", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/movements?productId=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.ListResponse[dto.MovementResponse]](t, resp)
	require.Equal(t, 2, history.Count)
	assert.Less(t, history.Items[0].ID, history.Items[1].ID)
}

func TestStocksYRebuild(t *testing.T) {
	app := newTestApp(t)
	cafe := createProduct(t, app, "CAFE", 10)
	te := createProduct(t, app, "TE", 1)
	receipt(t, app, cafe.ID, 3, "SHOPFLOOR")
	receipt(t, app, te.ID, 2, "BACKROOM")

	resp := do(t, app, http.MethodGet, "/api/stocks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ListResponse[dto.StockResponse]](t, resp).Count)

	resp = do(t, app, http.MethodGet, "/api/stocks/low", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low := decode[dto.ListResponse[dto.StockResponse]](t, resp)
	require.Equal(t, 1, low.Count)
	assert.Equal(t, "CAFE", low.Items[0].SKU)

	resp = do(t, app, http.MethodGet, "/api/stocks/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[dto.StockResponse](t, resp)
	assert.Equal(t, int64(3), s.ShopfloorQty)
	assert.Equal(t, int64(3), s.TotalQty)

	resp = do(t, app, http.MethodPost, "/api/stocks/1/rebuild", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	r := decode[dto.StockRebuildResponse](t, resp)
	assert.False(t, r.Drift)
	assert.Equal(t, 1, r.Movements)
}

func uploadCSV(t *testing.T, app *fiber.App, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sales-imports", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestImportacionDeVentas(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "SKU-001", 0)
	receipt(t, app, p.ID, 3, "SHOPFLOOR")
	receipt(t, app, p.ID, 5, "BACKROOM")

	content := "sku;cantidad\nSKU-001;6\nSKU-999;2\nSKU-001;abc\n"
	resp := uploadCSV(t, app, "ventas.csv", content)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(apphttp.HeaderImportDuplicate))
	batch := decode[dto.ImportBatchResponse](t, resp)
	assert.Equal(t, "COMPLETED", string(batch.Status))
	assert.Equal(t, 3, batch.RowsRead)
	assert.Equal(t, 2, batch.RowsValid)
	assert.Equal(t, 1, batch.RowsInvalid)
	assert.Equal(t, 1, batch.RowsUnknownSKU)
	assert.Equal(t, int64(6), batch.TotalQuantityApplied)
	assert.Equal(t, 2, batch.MovementsCreated)

	sum := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(sum[:]), batch.SHA256)

	resp = uploadCSV(t, app, "otra-vez.csv", content)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get(apphttp.HeaderImportDuplicate))
	again := decode[dto.ImportBatchResponse](t, resp)
	assert.Equal(t, batch.ID, again.ID)

	resp = do(t, app, http.MethodGet, "/api/stocks/1", nil)
	assert.Equal(t, int64(2), decode[dto.StockResponse](t, resp).TotalQty)

	resp = do(t, app, http.MethodGet, "/api/sales-imports/"+batch.SHA256, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, batch.ID, decode[dto.ImportBatchResponse](t, resp).ID)

	resp = do(t, app, http.MethodGet, "/api/sales-imports/deadbeef", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/sales-imports", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ListResponse[dto.ImportBatchResponse]](t, resp).Count)

	resp = do(t, app, http.MethodGet, "/api/reports/top-sales", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	top := decode[dto.ListResponse[dto.TopSaleDTO]](t, resp)
	require.Equal(t, 1, top.Count)
	assert.Equal(t, int64(6), top.Items[0].UnitsSold)
}

func TestImportacion_SinArchivo(t *testing.T) {
	app := newTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/sales-imports", map[string]any{"x": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decode[dto.ErrorResponse](t, resp).Category)

	resp = uploadCSV(t, app, "vacio.csv", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSugerenciasYExportaciones(t *testing.T) {
	app := newTestApp(t)
	a := createProduct(t, app, "A", 10)
	receipt(t, app, a.ID, 2, "BACKROOM")
	createProduct(t, app, "B", 0)

	resp := do(t, app, http.MethodGet, "/api/order-suggestions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := decode[dto.ListResponse[dto.OrderSuggestionRow]](t, resp)
	assert.Equal(t, 2, rows.Count)

	resp = do(t, app, http.MethodGet, "/api/order-suggestions/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	csv, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "sku,name,backroomQty,shopfloorQty,totalQty,minTotal,suggestedQty\nA,Producto A,2,0,2,10,8\n", string(csv))

	resp = do(t, app, http.MethodGet, "/api/order-suggestions/export.xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/order-suggestions/export.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRequestIDYRutaInexistente(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	assert.Equal(t, "not_found", decode[dto.ErrorResponse](t, resp).Category)
}

func TestConteoFisico(t *testing.T) {
	app := newTestApp(t)
	p := createProduct(t, app, "P", 0)
	receipt(t, app, p.ID, 10, "BACKROOM")

	resp := do(t, app, http.MethodPost, "/api/stock-counts", map[string]any{
		"note": "inventario anual",
		"lines": []map[string]any{
			{"sku": "P", "location": "BACKROOM", "countedQty": 8},
			{"sku": "P", "location": "SHOPFLOOR", "countedQty": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.StockCountResponse](t, resp)
	assert.Equal(t, 2, out.TotalPositions)
	assert.Equal(t, 2, out.PositionsWithDifference)
	assert.Equal(t, int64(1), out.TotalPositiveDifference)
	assert.Equal(t, int64(2), out.TotalNegativeDifference)

	resp = do(t, app, http.MethodGet, "/api/movements?productId="+strconv.FormatInt(p.ID, 10), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.ListResponse[dto.MovementResponse]](t, resp).Count)

	resp = do(t, app, http.MethodPost, "/api/stock-counts", map[string]any{
		"lines": []map[string]any{{"sku": "OTRO", "location": "BACKROOM", "countedQty": 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, "/api/stock-counts", map[string]any{"lines": []map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decode[dto.ErrorResponse](t, resp).Category)
}
