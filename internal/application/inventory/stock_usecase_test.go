package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

func (e *env) seed(t *testing.T, sku string, minTotal, backroom, shopfloor int64) *entity.Product {
	t.Helper()
	ctx := context.Background()
	p := e.product(t, sku, minTotal)
	if backroom > 0 {
		_, err := e.engine.Receipt(ctx, p.ID, backroom, entity.Backroom, "")
		require.NoError(t, err)
	}
	if shopfloor > 0 {
		_, err := e.engine.Receipt(ctx, p.ID, shopfloor, entity.Shopfloor, "")
		require.NoError(t, err)
	}
	return p
}

func TestListAll_YBajoMinimo(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seed(t, "CAFE-01", 10, 2, 1)
	e.seed(t, "TE-01", 5, 5, 0)
	inactive := e.seed(t, "AZUCAR-01", 3, 0, 0)
	inactive.Active = false
	require.NoError(t, e.store.Products().Update(ctx, inactive))

	all, err := e.stock.ListAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2, "sin query solo activos")
	for _, s := range all {
		assert.Equal(t, s.BackroomQty+s.ShopfloorQty, s.TotalQty)
	}

	low, err := e.stock.ListLow(ctx, "")
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "CAFE-01", low[0].SKU)
	assert.True(t, low[0].Low)

	found, err := e.stock.ListAll(ctx, "azucar")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.False(t, found[0].Active)
}

func TestCurrentStock_NegativoFallaEnVozAlta(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seed(t, "P", 0, 1, 0)

	// Proyección corrupta escrita por fuera del motor.
	require.NoError(t, e.store.Stocks().Save(ctx, entity.StockLevel{ProductID: p.ID, Backroom: -1}))

	_, err := e.stock.CurrentStock(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	_, err = e.stock.ListAll(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Equal(t, 2, e.metrics.violations)

	// El motor tampoco opera sobre un estado imposible.
	_, err = e.engine.Receipt(ctx, p.ID, 1, entity.Backroom, "")
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	_, err = e.stock.CurrentStock(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRebuild_CorrigeDrift(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seed(t, "P", 0, 6, 4)
	q := e.seed(t, "Q", 0, 1, 0)

	require.NoError(t, e.store.Stocks().Save(ctx, entity.StockLevel{ProductID: p.ID, Backroom: 100, Shopfloor: 0}))

	res, err := e.stock.Rebuild(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, res.Drift)
	assert.Equal(t, 2, res.Movements)
	assert.Equal(t, int64(100), res.PreviousBackroom)
	assert.Equal(t, int64(6), res.BackroomQty)
	assert.Equal(t, int64(4), res.ShopfloorQty)
	assert.Equal(t, int64(6), e.level(t, p.ID).Backroom)

	all, err := e.stock.RebuildAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, r := range all {
		assert.False(t, r.Drift)
	}
	assert.Equal(t, q.ID, all[1].ProductID)

	_, err = e.stock.Rebuild(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakeRenderer struct {
	rows []dto.OrderSuggestionRow
}

func (r *fakeRenderer) RenderOrderSuggestions(rows []dto.OrderSuggestionRow) ([]byte, error) {
	r.rows = rows
	return []byte("ok"), nil
}

func TestOrderSuggestions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seed(t, "D", 2, 0, 0)
	e.seed(t, "C", 8, 1, 0)
	e.seed(t, "B", 5, 3, 2)
	e.seed(t, "A", 10, 2, 1)

	xlsx := &fakeRenderer{}
	uc := inventory.NewOrderSuggestionUseCase(e.stock, xlsx, nil)

	rows, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	bySKU := map[string]dto.OrderSuggestionRow{}
	for _, r := range rows {
		bySKU[r.SKU] = r
	}
	assert.Equal(t, int64(7), bySKU["A"].SuggestedQty)
	assert.Zero(t, bySKU["B"].SuggestedQty)

	csv, err := uc.ExportCSV(ctx, "")
	require.NoError(t, err)
	want := "sku,name,backroomQty,shopfloorQty,totalQty,minTotal,suggestedQty\n" +
		"A,Producto A,2,1,3,10,7\n" +
		"C,Producto C,1,0,1,8,7\n" +
		"D,Producto D,0,0,0,2,2\n"
	assert.Equal(t, want, string(csv))

	out, err := uc.ExportXLSX(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
	require.Len(t, xlsx.rows, 3)
	assert.Equal(t, "A", xlsx.rows[0].SKU)

	_, err = uc.ExportPDF(ctx, "")
	assert.Error(t, err, "sin renderer PDF configurado")
}

func TestOrderSuggestions_ExportVacioSoloEncabezado(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "OK", 1, 1, 0)
	uc := inventory.NewOrderSuggestionUseCase(e.stock, nil, nil)

	csv, err := uc.ExportCSV(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "sku,name,backroomQty,shopfloorQty,totalQty,minTotal,suggestedQty\n", string(csv))
}
