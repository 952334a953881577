package inventory_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/inventory"
)

const productID int64 = 7

func mov(id int64, t entity.MovementType, qty int64, from, to entity.Location) *entity.Movement {
	return &entity.Movement{
		ID:           id,
		ProductID:    productID,
		Type:         t,
		Quantity:     qty,
		FromLocation: from,
		ToLocation:   to,
		OccurredAt:   time.Unix(id, 0),
	}
}

func TestReplay_RecepcionYTraslado(t *testing.T) {
	level, err := inventory.Replay(productID, []*entity.Movement{
		mov(1, entity.MovementReceipt, 10, entity.LocationNone, entity.Backroom),
		mov(2, entity.MovementTransfer, 4, entity.Backroom, entity.Shopfloor),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), level.Backroom)
	assert.Equal(t, int64(4), level.Shopfloor)
	assert.Equal(t, int64(10), level.Total())
	assert.Equal(t, time.Unix(2, 0), level.UpdatedAt)
}

func TestReplay_SalidaYVentaRestan(t *testing.T) {
	level, err := inventory.Replay(productID, []*entity.Movement{
		mov(1, entity.MovementReceipt, 5, entity.LocationNone, entity.Shopfloor),
		mov(2, entity.MovementIssue, 2, entity.Shopfloor, entity.LocationNone),
		mov(3, entity.MovementSaleImport, 3, entity.Shopfloor, entity.LocationNone),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), level.Shopfloor)
	assert.Equal(t, int64(0), level.Total())
}

func TestReplay_NegativoEsViolacionDeInvariante(t *testing.T) {
	_, err := inventory.Replay(productID, []*entity.Movement{
		mov(1, entity.MovementReceipt, 1, entity.LocationNone, entity.Backroom),
		mov(2, entity.MovementIssue, 2, entity.Backroom, entity.LocationNone),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	var inv *domain.InvariantViolationError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, productID, inv.ProductID)
}

func TestApply_RechazaOtroProductoYTipoDesconocido(t *testing.T) {
	base := entity.StockLevel{ProductID: productID}

	other := mov(1, entity.MovementReceipt, 1, entity.LocationNone, entity.Backroom)
	other.ProductID = productID + 1
	_, err := inventory.Apply(base, other)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	_, err = inventory.Apply(base, mov(2, entity.MovementType(99), 1, entity.LocationNone, entity.Backroom))
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	_, err = inventory.Apply(base, mov(3, entity.MovementReceipt, 0, entity.LocationNone, entity.Backroom))
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

// Propiedad: cualquier secuencia que respete la suficiencia por ubicación se pliega sin negativos,
// el total es siempre backroom+shopfloor y cada tipo conserva la cantidad según su signo.
func TestReplay_PropiedadesDeConservacion(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2024))

	for round := 0; round < 200; round++ {
		var (
			movements []*entity.Movement
			level     = entity.StockLevel{ProductID: productID}
			nextID    int64
		)
		for step := 0; step < 60; step++ {
			nextID++
			loc := entity.Locations[rng.IntN(2)]
			other := entity.Backroom
			if loc == entity.Backroom {
				other = entity.Shopfloor
			}
			qty := int64(rng.IntN(20) + 1)

			var m *entity.Movement
			switch rng.IntN(4) {
			case 0:
				m = mov(nextID, entity.MovementReceipt, qty, entity.LocationNone, loc)
			case 1:
				if level.At(loc) < qty {
					continue
				}
				m = mov(nextID, entity.MovementIssue, qty, loc, entity.LocationNone)
			case 2:
				if level.At(loc) < qty {
					continue
				}
				m = mov(nextID, entity.MovementTransfer, qty, loc, other)
			case 3:
				if level.At(loc) < qty {
					continue
				}
				m = mov(nextID, entity.MovementSaleImport, qty, loc, entity.LocationNone)
			}

			before := level.Total()
			next, err := inventory.Apply(level, m)
			require.NoError(t, err)
			switch m.Type {
			case entity.MovementReceipt:
				assert.Equal(t, before+qty, next.Total())
			case entity.MovementTransfer:
				assert.Equal(t, before, next.Total())
			case entity.MovementIssue, entity.MovementSaleImport:
				assert.Equal(t, before-qty, next.Total())
			}
			level = next
			movements = append(movements, m)
		}

		replayed, err := inventory.Replay(productID, movements)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, replayed.Backroom, int64(0))
		assert.GreaterOrEqual(t, replayed.Shopfloor, int64(0))
		assert.Equal(t, replayed.Backroom+replayed.Shopfloor, replayed.Total())
		assert.Equal(t, level.Backroom, replayed.Backroom)
		assert.Equal(t, level.Shopfloor, replayed.Shopfloor)
	}
}

func TestSuggestedQty_Monotonia(t *testing.T) {
	const minTotal int64 = 25
	prev := inventory.SuggestedQty(minTotal, 0)
	assert.Equal(t, minTotal, prev)
	for total := int64(1); total <= 40; total++ {
		got := inventory.SuggestedQty(minTotal, total)
		assert.LessOrEqual(t, got, prev, "no debe crecer cuando crece el total")
		if total >= minTotal {
			assert.Zero(t, got)
		}
		prev = got
	}
	assert.Zero(t, inventory.SuggestedQty(0, 0))
}
