package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/metrics"
)

func TestPrometheus_Contadores(t *testing.T) {
	p := metrics.NewPrometheus()
	p.MovementRecorded(entity.MovementReceipt)
	p.MovementRecorded(entity.MovementReceipt)
	p.MovementRecorded(entity.MovementSaleImport)
	p.InsufficientStock("ISSUE")
	p.InvariantViolation()
	p.ImportFinished(entity.ImportCompleted)
	p.ImportFinished(entity.ImportFailed)

	expected := `
# HELP inventario_movements_total Movimientos anexados al ledger por tipo.
# TYPE inventario_movements_total counter
inventario_movements_total{type="RECEIPT"} 2
inventario_movements_total{type="SALE_IMPORT"} 1
# HELP inventario_sales_import_batches_total Lotes de importación de ventas finalizados por estado.
# TYPE inventario_sales_import_batches_total counter
inventario_sales_import_batches_total{status="COMPLETED"} 1
inventario_sales_import_batches_total{status="FAILED"} 1
# HELP inventario_invariant_violations_total Proyecciones de stock negativas o inconsistentes detectadas.
# TYPE inventario_invariant_violations_total counter
inventario_invariant_violations_total 1
`
	err := testutil.GatherAndCompare(p.Registry(), strings.NewReader(expected),
		metrics.MetricMovementsTotal, metrics.MetricSalesImportBatchesTotal, metrics.MetricInvariantViolations)
	require.NoError(t, err)
}

func TestPrometheus_Handler(t *testing.T) {
	p := metrics.NewPrometheus()
	p.InsufficientStock("TRANSFER")

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `inventario_insufficient_stock_total{operation="TRANSFER"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
