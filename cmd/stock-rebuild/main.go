// stock-rebuild reconstruye la proyección de existencias de todos los productos reproduciendo el ledger
// de PostgreSQL e informa los productos cuya proyección difería.
//
// Uso: go run ./cmd/stock-rebuild
// Usa la misma configuración que la API (DATABASE_URL o DB_*). Sale con código 2 si hubo diferencias.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-tienda/pkg/config"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.StorageDriver != config.StoragePostgres {
		fmt.Fprintln(os.Stderr, "stock-rebuild requiere STORAGE_DRIVER=postgres")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockUC := inventory.NewStockUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewProductRepository(pool),
		postgres.NewStockRepository(pool),
		postgres.NewMovementRepository(pool),
		nil,
		log,
	)

	results, err := stockUC.RebuildAll(ctx)
	drifted := 0
	for _, r := range results {
		if r.Drift {
			drifted++
			fmt.Printf("producto %d: bodega %d -> %d, piso %d -> %d (%d movimientos)\n",
				r.ProductID, r.PreviousBackroom, r.BackroomQty, r.PreviousShopfloor, r.ShopfloorQty, r.Movements)
		}
	}
	if err != nil {
		log.Error().Err(err).Int("rebuilt", len(results)).Msg("reconstrucción interrumpida")
		os.Exit(1)
	}

	log.Info().Int("products", len(results)).Int("drifted", drifted).Msg("reconstrucción terminada")
	if drifted > 0 {
		os.Exit(2)
	}
}
