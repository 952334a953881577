package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

func TestConteo_AjustaSobrantesYFaltantes(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a := e.product(t, "A", 0)
	b := e.product(t, "B", 0)

	_, err := e.engine.Receipt(ctx, a.ID, 10, entity.Backroom, "")
	require.NoError(t, err)
	_, err = e.engine.Receipt(ctx, a.ID, 3, entity.Shopfloor, "")
	require.NoError(t, err)
	_, err = e.engine.Receipt(ctx, b.ID, 5, entity.Shopfloor, "")
	require.NoError(t, err)

	out, err := e.engine.Count(ctx, dto.StockCountRequest{
		Note: "cierre de mes",
		Lines: []dto.StockCountLine{
			{SKU: "A", Location: entity.Backroom, CountedQty: 12},
			{SKU: "A", Location: entity.Shopfloor, CountedQty: 3},
			{SKU: " B ", Location: entity.Shopfloor, CountedQty: 1},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.CountID)
	assert.Equal(t, 3, out.TotalPositions)
	assert.Equal(t, 2, out.PositionsWithDifference)
	assert.Equal(t, int64(2), out.TotalPositiveDifference)
	assert.Equal(t, int64(4), out.TotalNegativeDifference)

	require.Len(t, out.Lines, 3)
	assert.Equal(t, int64(10), out.Lines[0].SystemQty)
	assert.Equal(t, int64(2), out.Lines[0].Difference)
	require.NotNil(t, out.Lines[0].MovementID)
	assert.Nil(t, out.Lines[1].MovementID)
	assert.Equal(t, "B", out.Lines[2].SKU)
	assert.Equal(t, int64(-4), out.Lines[2].Difference)

	levelA := e.level(t, a.ID)
	assert.Equal(t, int64(12), levelA.Backroom)
	assert.Equal(t, int64(3), levelA.Shopfloor)
	assert.Equal(t, int64(1), e.level(t, b.ID).Shopfloor)

	history, err := e.engine.History(ctx, b.ID)
	require.NoError(t, err)
	last := history[len(history)-1]
	assert.Equal(t, entity.MovementIssue, last.Type)
	assert.Equal(t, entity.Shopfloor, last.FromLocation)
	assert.Equal(t, int64(4), last.Quantity)
	assert.Equal(t, out.CountID, last.Reference)
	assert.Equal(t, "conteo físico: cierre de mes", last.Note)

	movements, qty, err := e.engine.AppliedByReference(ctx, out.CountID)
	require.NoError(t, err)
	assert.Equal(t, 2, movements)
	assert.Equal(t, int64(6), qty)
	assert.Equal(t, 1, e.metrics.movements[entity.MovementIssue])
}

func TestConteo_SinDiferenciasNoTocaElLedger(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.product(t, "P", 0)
	_, err := e.engine.Receipt(ctx, p.ID, 4, entity.Backroom, "")
	require.NoError(t, err)

	out, err := e.engine.Count(ctx, dto.StockCountRequest{Lines: []dto.StockCountLine{
		{SKU: "P", Location: entity.Backroom, CountedQty: 4},
		{SKU: "P", Location: entity.Shopfloor, CountedQty: 0},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalPositions)
	assert.Zero(t, out.PositionsWithDifference)

	history, err := e.engine.History(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestConteo_ValidaTodasLasLineasAntesDeEscribir(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.product(t, "P", 0)

	cases := []struct {
		name  string
		lines []dto.StockCountLine
	}{
		{"sin líneas", nil},
		{"sku vacío", []dto.StockCountLine{{SKU: " ", Location: entity.Backroom}}},
		{"ubicación inválida", []dto.StockCountLine{{SKU: "P"}}},
		{"cantidad negativa", []dto.StockCountLine{{SKU: "P", Location: entity.Backroom, CountedQty: -1}}},
		{"posición repetida", []dto.StockCountLine{
			{SKU: "P", Location: entity.Backroom, CountedQty: 1},
			{SKU: "P", Location: entity.Backroom, CountedQty: 2},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.engine.Count(ctx, dto.StockCountRequest{Lines: tc.lines})
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	_, err := e.engine.Count(ctx, dto.StockCountRequest{Lines: []dto.StockCountLine{
		{SKU: "P", Location: entity.Backroom, CountedQty: 7},
		{SKU: "NOEXISTE", Location: entity.Backroom, CountedQty: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	history, err := e.engine.History(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConteo_ProductoInactivoSeAjusta(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.product(t, "P", 0)
	_, err := e.engine.Receipt(ctx, p.ID, 5, entity.Shopfloor, "")
	require.NoError(t, err)
	p.Active = false
	require.NoError(t, e.store.Products().Update(ctx, p))

	out, err := e.engine.Count(ctx, dto.StockCountRequest{Lines: []dto.StockCountLine{
		{SKU: "P", Location: entity.Shopfloor, CountedQty: 0},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.TotalNegativeDifference)
	assert.Zero(t, e.level(t, p.ID).Total())
}

