// Package metrics expone los contadores del inventario en formato Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// Nombres de las métricas publicadas.
const (
	MetricMovementsTotal          = "inventario_movements_total"
	MetricInsufficientStockTotal  = "inventario_insufficient_stock_total"
	MetricSalesImportBatchesTotal = "inventario_sales_import_batches_total"
	MetricInvariantViolations     = "inventario_invariant_violations_total"
)

var (
	_ inventory.Metrics   = (*Prometheus)(nil)
	_ salesimport.Metrics = (*Prometheus)(nil)
)

// Prometheus implementa los puertos de métricas de inventario e importación sobre un registro propio.
type Prometheus struct {
	registry           *prometheus.Registry
	movements          *prometheus.CounterVec
	insufficientStock  *prometheus.CounterVec
	importBatches      *prometheus.CounterVec
	invariantViolation prometheus.Counter
}

// NewPrometheus crea el registro con los contadores del dominio y los colectores de proceso y runtime.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMovementsTotal,
			Help: "Movimientos anexados al ledger por tipo.",
		}, []string{"type"}),
		insufficientStock: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricInsufficientStockTotal,
			Help: "Operaciones rechazadas por existencias insuficientes.",
		}, []string{"operation"}),
		importBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricSalesImportBatchesTotal,
			Help: "Lotes de importación de ventas finalizados por estado.",
		}, []string{"status"}),
		invariantViolation: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricInvariantViolations,
			Help: "Proyecciones de stock negativas o inconsistentes detectadas.",
		}),
	}
	p.registry.MustRegister(
		p.movements,
		p.insufficientStock,
		p.importBatches,
		p.invariantViolation,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) MovementRecorded(t entity.MovementType) {
	p.movements.WithLabelValues(t.String()).Inc()
}

func (p *Prometheus) InsufficientStock(operation string) {
	p.insufficientStock.WithLabelValues(operation).Inc()
}

func (p *Prometheus) InvariantViolation() {
	p.invariantViolation.Inc()
}

func (p *Prometheus) ImportFinished(status entity.ImportStatus) {
	p.importBatches.WithLabelValues(string(status)).Inc()
}

// Registry devuelve el registro para pruebas o colectores adicionales.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler sirve el registro en formato de exposición de Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
