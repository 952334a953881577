package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/analytics"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	Movements   *inventory.MovementUseCase
	Stock       *inventory.StockUseCase
	Suggestions *inventory.OrderSuggestionUseCase
	SalesImport *salesimport.UseCase
	TopSales    *analytics.TopSalesUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (registro)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/deactivate", productHandler.Deactivate)

	// Stocks (proyección)
	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.Stock)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/low", stockHandler.ListLow)
	stocks.Get("/:productId", stockHandler.GetByProduct)
	stocks.Post("/:productId/rebuild", stockHandler.Rebuild)

	// Movements (ledger)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Movements)
	movements.Post("/receipt", movementHandler.Receipt)
	movements.Post("/issue", movementHandler.Issue)
	movements.Post("/transfer", movementHandler.Transfer)
	movements.Get("/", movementHandler.History)
	api.Post("/stock-counts", movementHandler.Count)

	// Sales imports
	imports := api.Group("/sales-imports")
	importHandler := NewSalesImportHandler(deps.SalesImport)
	imports.Post("/", importHandler.Upload)
	imports.Get("/", importHandler.List)
	imports.Get("/:sha256", importHandler.GetBySHA256)

	// Order suggestions
	suggestions := api.Group("/order-suggestions")
	suggestionHandler := NewOrderSuggestionHandler(deps.Suggestions)
	suggestions.Get("/", suggestionHandler.List)
	suggestions.Get("/export", suggestionHandler.ExportCSV)
	suggestions.Get("/export.xlsx", suggestionHandler.ExportXLSX)
	suggestions.Get("/export.pdf", suggestionHandler.ExportPDF)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.TopSales)
	reports.Get("/top-sales", reportHandler.TopSales)
}
