package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/infrastructure/excel"
)

func TestRenderOrderSuggestions(t *testing.T) {
	out, err := excel.NewOrderSuggestionXLSX().RenderOrderSuggestions([]dto.OrderSuggestionRow{
		{SKU: "A", Name: "Producto A", MinTotal: 10, BackroomQty: 2, ShopfloorQty: 1, TotalQty: 3, SuggestedQty: 7},
		{SKU: "C", Name: "Producto C", MinTotal: 8, BackroomQty: 1, TotalQty: 1, SuggestedQty: 7},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Reposicion")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"sku", "name", "backroomQty", "shopfloorQty", "totalQty", "minTotal", "suggestedQty"}, rows[0])
	assert.Equal(t, []string{"A", "Producto A", "2", "1", "3", "10", "7"}, rows[1])
	assert.Equal(t, []string{"C", "Producto C", "1", "0", "1", "8", "7"}, rows[2])
}
