package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
)

func TestFormatQty(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		25000:   "25.000",
		1000000: "1.000.000",
		-1500:   "-1.500",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatQty(in))
	}
}

func TestRenderOrderSuggestions(t *testing.T) {
	g := NewOrderSuggestionPDF("Tienda Centro")
	out, err := g.RenderOrderSuggestions([]dto.OrderSuggestionRow{
		{ProductID: 1, SKU: "CAFE-01", Name: "Café molido", MinTotal: 10, BackroomQty: 2, ShopfloorQty: 1, TotalQty: 3, SuggestedQty: 7},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := g.RenderOrderSuggestions(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
}
