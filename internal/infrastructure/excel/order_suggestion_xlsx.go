// Package excel genera la lista de reposición en formato XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
)

const sheetName = "Reposicion"

// Header columnas de la hoja, mismas que el CSV de exportación.
var Header = []any{"sku", "name", "backroomQty", "shopfloorQty", "totalQty", "minTotal", "suggestedQty"}

var _ inventory.SuggestionRenderer = (*OrderSuggestionXLSX)(nil)

// OrderSuggestionXLSX implementa inventory.SuggestionRenderer con excelize.
type OrderSuggestionXLSX struct{}

// NewOrderSuggestionXLSX construye el generador.
func NewOrderSuggestionXLSX() *OrderSuggestionXLSX { return &OrderSuggestionXLSX{} }

// RenderOrderSuggestions escribe una fila por producto en el orden recibido.
func (OrderSuggestionXLSX) RenderOrderSuggestions(rows []dto.OrderSuggestionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &Header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{r.SKU, r.Name, r.BackroomQty, r.ShopfloorQty, r.TotalQty, r.MinTotal, r.SuggestedQty}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
