package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	_ "github.com/jhoicas/inventario-tienda/docs"
	"github.com/jhoicas/inventario-tienda/internal/application/analytics"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/redislock"
	httpRouter "github.com/jhoicas/inventario-tienda/internal/interfaces/http"
	"github.com/jhoicas/inventario-tienda/pkg/config"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// @title        Inventario Tienda API
// @version      1.0
// @description  Ledger de inventario de una tienda con bodega y piso de venta.
// @BasePath     /

// storage repositorios de la implementación elegida por STORAGE_DRIVER.
type storage struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	stocks    repository.StockRepository
	batches   repository.SalesImportRepository
	txRunner  inventory.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	var locker salesimport.BatchLocker
	if cfg.Redis.Enabled() {
		rdb, err := redislock.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		locker = redislock.New(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("candado de importaciones en Redis")
	}

	policy, err := salesimport.ParsePolicy(cfg.Import.Policy)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de importación")
	}

	var (
		prom          *metrics.Prometheus
		engineMetrics inventory.Metrics
		importMetrics salesimport.Metrics
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus()
		engineMetrics, importMetrics = prom, prom
	}

	movementUC := inventory.NewMovementUseCase(store.txRunner, store.products, store.movements, engineMetrics, log)
	stockUC := inventory.NewStockUseCase(store.txRunner, store.products, store.stocks, store.movements, engineMetrics, log)
	suggestionUC := inventory.NewOrderSuggestionUseCase(stockUC, excel.NewOrderSuggestionXLSX(), pdf.NewOrderSuggestionPDF(cfg.App.Name))
	importUC := salesimport.NewUseCase(store.products, store.batches, movementUC, locker, importMetrics, log, salesimport.Config{
		Policy:   policy,
		MaxBytes: cfg.Import.MaxBytes,
		LockTTL:  cfg.Import.LockTTL,
		LockWait: cfg.Import.LockWait,
	})
	productUC := usecase.NewProductUseCase(store.products)
	topSalesUC := analytics.NewTopSalesUseCase(store.movements, store.products)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:      cfg.App.Name,
		BodyLimit: int(cfg.Import.MaxBytes) + 1<<20,
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.StorageDriver})
	})
	if prom != nil {
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		Movements:   movementUC,
		Stock:       stockUC,
		Suggestions: suggestionUC,
		SalesImport: importUC,
		TopSales:    topSalesUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.App.StorageDriver == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{
			products:  s.Products(),
			movements: s.Movements(),
			stocks:    s.Stocks(),
			batches:   s.SalesImports(),
			txRunner:  s.TxRunner(),
			close:     func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		products:  postgres.NewProductRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		stocks:    postgres.NewStockRepository(pool),
		batches:   postgres.NewSalesImportRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
