// Package salesimport convierte archivos de ventas del POS en movimientos SALE_IMPORT,
// con deduplicación por contenido (SHA-256 de los bytes crudos).
package salesimport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	"github.com/jhoicas/inventario-tienda/pkg/logger"
)

// Config parámetros del conciliador.
type Config struct {
	Policy   Policy
	MaxBytes int64         // 0 = sin límite
	LockTTL  time.Duration // vigencia del candado; un PROCESSING más antiguo se da por abandonado
	LockWait time.Duration // espera máxima por el candado
}

// Result lote procesado; Duplicate indica que se devolvió un resultado previo sin aplicar nada.
type Result struct {
	Batch     *entity.ImportBatch
	Duplicate bool
}

// UseCase conciliador de importaciones de ventas.
type UseCase struct {
	products repository.ProductRepository
	batches  repository.SalesImportRepository
	drawer   StockDrawer
	locker   BatchLocker
	metrics  Metrics
	log      *logger.Logger
	cfg      Config
	group    singleflight.Group
	now      func() time.Time
}

// NewUseCase construye el conciliador. locker y metrics pueden ser nil: sin locker la exclusión
// entre subidas idénticas depende de singleflight (mismo proceso) y de Claim (base de datos).
func NewUseCase(
	products repository.ProductRepository,
	batches repository.SalesImportRepository,
	drawer StockDrawer,
	locker BatchLocker,
	metrics Metrics,
	log *logger.Logger,
	cfg Config,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyBestEffort
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 5 * time.Minute
	}
	if cfg.LockWait <= 0 {
		cfg.LockWait = 30 * time.Second
	}
	return &UseCase{
		products: products,
		batches:  batches,
		drawer:   drawer,
		locker:   locker,
		metrics:  metrics,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Import procesa el archivo una sola vez por contenido. Una segunda subida de los mismos bytes
// devuelve el resultado registrado sin crear movimientos.
func (uc *UseCase) Import(ctx context.Context, filename string, raw []byte) (*Result, error) {
	if len(raw) == 0 {
		return nil, domain.NewValidationError("file", "el archivo está vacío")
	}
	if uc.cfg.MaxBytes > 0 && int64(len(raw)) > uc.cfg.MaxBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("el archivo supera %d bytes", uc.cfg.MaxBytes))
	}
	sum := sha256.Sum256(raw)
	sha := hex.EncodeToString(sum[:])

	executed := false
	v, err, _ := uc.group.Do(sha, func() (any, error) {
		executed = true
		return uc.importOnce(ctx, sha, filename, raw)
	})
	if err != nil {
		return nil, err
	}
	res := v.(*Result)
	if !executed {
		// Otra petición concurrente con el mismo contenido hizo el trabajo.
		return &Result{Batch: res.Batch, Duplicate: true}, nil
	}
	return res, nil
}

// Get devuelve un lote por su SHA-256.
func (uc *UseCase) Get(ctx context.Context, sha string) (*entity.ImportBatch, error) {
	b, err := uc.batches.GetBySHA256(ctx, strings.ToLower(strings.TrimSpace(sha)))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("lote %s: %w", sha, domain.ErrNotFound)
	}
	return b, nil
}

// List devuelve los lotes más recientes primero.
func (uc *UseCase) List(ctx context.Context, limit int) ([]*entity.ImportBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return uc.batches.ListRecent(ctx, limit)
}

func (uc *UseCase) importOnce(ctx context.Context, sha, filename string, raw []byte) (*Result, error) {
	existing, err := uc.batches.GetBySHA256(ctx, sha)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status.Terminal() && !retryable(existing) {
		return uc.duplicate(existing), nil
	}

	if uc.locker != nil {
		release, err := uc.locker.Acquire(ctx, "sales-import:"+sha, uc.cfg.LockTTL, uc.cfg.LockWait)
		if errors.Is(err, ErrLockNotObtained) {
			return nil, fmt.Errorf("lote %s: %w", sha, domain.ErrImportInProgress)
		}
		if err != nil {
			return nil, fmt.Errorf("candado de importación: %w", err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				uc.log.Warn().Err(err).Str("sha256", sha).Msg("no se pudo liberar el candado de importación")
			}
		}()
	}

	batch := &entity.ImportBatch{
		ID:        uuid.NewString(),
		SHA256:    sha,
		Filename:  safeFilename(filename),
		Status:    entity.ImportProcessing,
		CreatedAt: uc.timestamp(),
	}
	existing, err = uc.batches.Claim(ctx, batch)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		res, proceed, err := uc.takeOver(ctx, existing, batch, raw)
		if !proceed {
			return res, err
		}
	}
	return uc.run(ctx, batch, raw)
}

// retryable un lote FAILED sin movimientos en el ledger puede procesarse de nuevo sin duplicar nada.
func retryable(b *entity.ImportBatch) bool {
	return b.Status == entity.ImportFailed && b.MovementsCreated == 0
}

// takeOver resuelve el lote previo del mismo archivo. proceed indica que batch quedó reclamado
// con el ID del lote previo y debe procesarse.
func (uc *UseCase) takeOver(ctx context.Context, existing, batch *entity.ImportBatch, raw []byte) (*Result, bool, error) {
	switch {
	case existing.Status.Terminal() && !retryable(existing):
		return uc.duplicate(existing), false, nil
	case existing.Status.Terminal():
		// FAILED sin movimientos: se reintenta.
	case uc.now().Sub(existing.CreatedAt) < uc.cfg.LockTTL:
		return nil, false, fmt.Errorf("lote %s: %w", existing.SHA256, domain.ErrImportInProgress)
	default:
		// PROCESSING con más antigüedad que el candado: el proceso que lo reclamó murió a mitad del lote.
		movements, qty, err := uc.drawer.AppliedByReference(ctx, existing.ID)
		if err != nil {
			return nil, false, fmt.Errorf("movimientos del lote %s: %w", existing.ID, err)
		}
		if movements > 0 {
			res, err := uc.closeAbandoned(ctx, existing, raw, movements, qty)
			return res, false, err
		}
	}

	batch.ID = existing.ID
	ok, err := uc.batches.Reopen(ctx, batch, existing.Status, existing.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, fmt.Errorf("lote %s: %w", existing.SHA256, domain.ErrImportInProgress)
	}
	uc.log.Warn().
		Str("batch_id", batch.ID).
		Str("previous_status", string(existing.Status)).
		Msg("se reprocesa un lote sin movimientos aplicados")
	return nil, true, nil
}

// closeAbandoned cierra como FAILED un lote interrumpido que ya escribió movimientos; los totales
// aplicados salen del ledger y los de lectura del propio archivo.
func (uc *UseCase) closeAbandoned(ctx context.Context, existing *entity.ImportBatch, raw []byte, movements int, qty int64) (*Result, error) {
	parsed := ParseCSV(raw)
	b := *existing
	finishedAt := uc.timestamp()
	b.Status = entity.ImportFailed
	b.RowsRead = parsed.RowsRead
	b.RowsValid = parsed.RowsValid
	b.RowsInvalid = parsed.RowsInvalid
	b.TotalQuantityRequested = parsed.TotalQuantityRequested
	b.MovementsCreated = movements
	b.TotalQuantityApplied = qty
	b.Error = fmt.Sprintf("importación interrumpida: se conservan %d movimientos aplicados", movements)
	b.FinishedAt = &finishedAt

	if err := uc.batches.Finish(ctx, &b); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("cerrar lote %s: %w", b.ID, err)
		}
		current, getErr := uc.batches.GetBySHA256(ctx, b.SHA256)
		if getErr != nil || current == nil {
			return nil, fmt.Errorf("cerrar lote %s: %w", b.ID, err)
		}
		return uc.duplicate(current), nil
	}
	uc.metrics.ImportFinished(b.Status)
	uc.log.Warn().
		Str("batch_id", b.ID).
		Int("movements_created", movements).
		Int64("qty_applied", qty).
		Msg("lote interrumpido cerrado como FAILED")
	return &Result{Batch: &b, Duplicate: true}, nil
}

// run procesa el lote reclamado y registra su resultado. Un fallo estructural deja el lote en FAILED
// y se devuelve como resultado, no como error.
func (uc *UseCase) run(ctx context.Context, batch *entity.ImportBatch, raw []byte) (*Result, error) {
	uc.log.Info().Str("batch_id", batch.ID).Str("sha256", batch.SHA256).Str("filename", batch.Filename).Msg("importación de ventas iniciada")

	runErr := uc.apply(ctx, batch, raw)
	finishedAt := uc.timestamp()
	batch.FinishedAt = &finishedAt
	switch {
	case runErr != nil:
		batch.Status = entity.ImportFailed
		batch.Error = runErr.Error()
	case batch.Status == entity.ImportProcessing:
		batch.Status = entity.ImportCompleted
	}

	// El resultado se registra aunque el cliente haya cancelado: los movimientos ya aplicados son definitivos.
	if err := uc.batches.Finish(context.WithoutCancel(ctx), batch); err != nil {
		return nil, fmt.Errorf("registrar resultado del lote %s: %w", batch.ID, err)
	}
	uc.metrics.ImportFinished(batch.Status)

	ev := uc.log.Info()
	if batch.Status == entity.ImportFailed {
		ev = uc.log.Error().Str("error", batch.Error)
	}
	ev.Str("batch_id", batch.ID).
		Str("status", string(batch.Status)).
		Int("rows_read", batch.RowsRead).
		Int("rows_valid", batch.RowsValid).
		Int("rows_unknown_sku", batch.RowsUnknownSKU).
		Int("movements_created", batch.MovementsCreated).
		Int64("qty_requested", batch.TotalQuantityRequested).
		Int64("qty_applied", batch.TotalQuantityApplied).
		Msg("importación de ventas finalizada")

	return &Result{Batch: batch}, nil
}

// timestamp hora UTC con la precisión que guarda PostgreSQL, para que el lote devuelto y el leído coincidan.
func (uc *UseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Microsecond)
}

// apply recorre las filas válidas y descuenta cada una en su propia transacción por producto.
// Devuelve error solo ante fallos estructurales; el corte por política estricta queda en el lote.
func (uc *UseCase) apply(ctx context.Context, batch *entity.ImportBatch, raw []byte) error {
	parsed := ParseCSV(raw)
	batch.RowsRead = parsed.RowsRead
	batch.RowsValid = parsed.RowsValid
	batch.RowsInvalid = parsed.RowsInvalid
	batch.TotalQuantityRequested = parsed.TotalQuantityRequested

	note := "venta importada: " + batch.Filename
	allowPartial := uc.cfg.Policy != PolicyStrict
	resolved := make(map[string]*entity.Product)

	for _, row := range parsed.Rows {
		if !row.Valid {
			continue
		}
		product, ok := resolved[row.SKU]
		if !ok {
			var err error
			product, err = uc.products.GetBySKU(ctx, row.SKU)
			if err != nil {
				return fmt.Errorf("registro de productos: %w", err)
			}
			resolved[row.SKU] = product
		}
		if product == nil {
			batch.RowsUnknownSKU++
			continue
		}

		applied, created, err := uc.drawer.DrawForSale(ctx, product.ID, row.Qty, note, batch.ID, allowPartial)
		if err != nil {
			var insufficient *domain.InsufficientStockError
			if !allowPartial && errors.As(err, &insufficient) {
				batch.Shortfalls = append(batch.Shortfalls, entity.ImportShortfall{Line: row.Line, SKU: row.SKU, Requested: row.Qty})
				batch.Status = entity.ImportFailed
				batch.Error = fmt.Sprintf("línea %d (%s): %v", row.Line, row.SKU, err)
				return nil
			}
			return fmt.Errorf("línea %d (%s): %w", row.Line, row.SKU, err)
		}
		batch.MovementsCreated += len(created)
		batch.TotalQuantityApplied += applied
		if applied < row.Qty {
			batch.Shortfalls = append(batch.Shortfalls, entity.ImportShortfall{
				Line:      row.Line,
				SKU:       row.SKU,
				Requested: row.Qty,
				Applied:   applied,
			})
		}
	}
	return nil
}

func (uc *UseCase) duplicate(existing *entity.ImportBatch) *Result {
	uc.log.Info().Str("batch_id", existing.ID).Str("sha256", existing.SHA256).Msg("archivo ya importado, se devuelve el resultado previo")
	return &Result{Batch: existing, Duplicate: true}
}

func safeFilename(name string) string {
	name = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "sin_nombre.csv"
	}
	return name
}
