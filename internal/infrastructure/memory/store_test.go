package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/memory"
)

func newProduct(t *testing.T, s *memory.Store, sku string) *entity.Product {
	t.Helper()
	p := &entity.Product{SKU: sku, Name: "Producto " + sku, Unit: "und", MinTotal: 5, Active: true}
	require.NoError(t, s.Products().Create(context.Background(), p))
	return p
}

func TestRunForProduct_RollbackDescartaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := newProduct(t, s, "SKU-001")
	boom := errors.New("boom")

	err := s.TxRunner().RunForProduct(ctx, p.ID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		m := &entity.Movement{ProductID: p.ID, Type: entity.MovementReceipt, Quantity: 3, ToLocation: entity.Backroom}
		require.NoError(t, movRepo.Append(ctx, m))
		require.NoError(t, stockRepo.Save(ctx, entity.StockLevel{ProductID: p.ID, Backroom: 3}))

		// Dentro de la transacción se ven los cambios pendientes.
		staged, err := movRepo.ListByProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, staged, 1)
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Movements().ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	level, err := s.Stocks().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, level.Total())
}

func TestAppend_IDsCrecientesYRelojNoRetrocede(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := memory.NewStore(memory.WithClock(func() time.Time { return clock }))
	p := newProduct(t, s, "SKU-001")

	first := &entity.Movement{ProductID: p.ID, Type: entity.MovementReceipt, Quantity: 1, ToLocation: entity.Backroom}
	require.NoError(t, s.Movements().Append(ctx, first))

	clock = clock.Add(-time.Hour) // el reloj retrocede
	second := &entity.Movement{ProductID: p.ID, Type: entity.MovementReceipt, Quantity: 1, ToLocation: entity.Shopfloor}
	require.NoError(t, s.Movements().Append(ctx, second))

	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, first.OccurredAt, second.OccurredAt)

	list, err := s.Movements().ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestAppend_RechazaMovimientoMalFormado(t *testing.T) {
	s := memory.NewStore()
	p := newProduct(t, s, "SKU-001")
	err := s.Movements().Append(context.Background(), &entity.Movement{ProductID: p.ID, Type: entity.MovementIssue, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunForProduct_SerializaMismoProducto(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := newProduct(t, s, "SKU-001")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.TxRunner().RunForProduct(ctx, p.ID, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				level, err := stockRepo.Get(ctx, p.ID)
				if err != nil {
					return err
				}
				time.Sleep(time.Millisecond)
				level.Backroom++
				err = stockRepo.Save(ctx, level)

				mu.Lock()
				inside--
				mu.Unlock()
				return err
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	level, err := s.Stocks().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), level.Backroom)
}

func TestRunForProduct_RespetaCancelacion(t *testing.T) {
	s := memory.NewStore()
	p := newProduct(t, s, "SKU-001")

	hold := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = s.TxRunner().RunForProduct(context.Background(), p.ID, func(repository.MovementRepository, repository.StockRepository) error {
			close(started)
			<-hold
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.TxRunner().RunForProduct(ctx, p.ID, func(repository.MovementRepository, repository.StockRepository) error {
		return nil
	})
	close(hold)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProductRepository_DuplicadoYBusqueda(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	newProduct(t, s, "CAFE-01")
	tea := newProduct(t, s, "TE-01")

	err := s.Products().Create(ctx, &entity.Product{SKU: "CAFE-01", Name: "otro", Unit: "und", Active: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := s.Products().Search(ctx, "cafe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "CAFE-01", found[0].SKU)

	tea.Active = false
	require.NoError(t, s.Products().Update(ctx, tea))
	active, err := s.Products().ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// La búsqueda incluye inactivos.
	found, err = s.Products().Search(ctx, "te-0")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	missing, err := s.Products().GetBySKU(ctx, "NO-EXISTE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSalesImportRepository_ClaimAtomico(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.SalesImports()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			existing, err := repo.Claim(ctx, &entity.ImportBatch{ID: string(rune('a' + i)), SHA256: "abc", Status: entity.ImportProcessing})
			assert.NoError(t, err)
			if err == nil && existing == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, winners)

	claimed, err := repo.GetBySHA256(ctx, "abc")
	require.NoError(t, err)
	claimed.Status = entity.ImportCompleted
	require.NoError(t, repo.Finish(ctx, claimed))
	assert.ErrorIs(t, repo.Finish(ctx, claimed), domain.ErrConflict)
}

func TestSalesImportRepository_ReopenCondicional(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.SalesImports()
	claimed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := repo.Claim(ctx, &entity.ImportBatch{ID: "b-1", SHA256: "abc", Status: entity.ImportProcessing, CreatedAt: claimed})
	require.NoError(t, err)

	retry := &entity.ImportBatch{ID: "b-1", SHA256: "abc", Status: entity.ImportProcessing, CreatedAt: claimed.Add(time.Hour)}
	ok, err := repo.Reopen(ctx, retry, entity.ImportFailed, claimed)
	require.NoError(t, err)
	assert.False(t, ok, "el lote no está en FAILED")

	ok, err = repo.Reopen(ctx, retry, entity.ImportProcessing, claimed)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Reopen(ctx, retry, entity.ImportProcessing, claimed)
	require.NoError(t, err)
	assert.False(t, ok, "la fecha de creación ya cambió")

	_, err = repo.Reopen(ctx, &entity.ImportBatch{ID: "x", SHA256: "zzz"}, entity.ImportProcessing, claimed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementRepository_TotalsByReference(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := newProduct(t, s, "A")
	b := newProduct(t, s, "B")
	for _, m := range []*entity.Movement{
		{ProductID: a.ID, Type: entity.MovementReceipt, Quantity: 9, ToLocation: entity.Shopfloor},
		{ProductID: a.ID, Type: entity.MovementSaleImport, Quantity: 2, FromLocation: entity.Shopfloor, Reference: "lote-1"},
		{ProductID: b.ID, Type: entity.MovementReceipt, Quantity: 9, ToLocation: entity.Backroom},
		{ProductID: b.ID, Type: entity.MovementSaleImport, Quantity: 3, FromLocation: entity.Backroom, Reference: "lote-1"},
		{ProductID: b.ID, Type: entity.MovementSaleImport, Quantity: 1, FromLocation: entity.Backroom, Reference: "lote-2"},
	} {
		require.NoError(t, s.Movements().Append(ctx, m))
	}

	count, qty, err := s.Movements().TotalsByReference(ctx, "lote-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(5), qty)
}
