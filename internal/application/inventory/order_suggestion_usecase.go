package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain/inventory"
)

// Columnas del CSV de reposición, en orden.
var suggestionCSVHeader = []string{"sku", "name", "backroomQty", "shopfloorQty", "totalQty", "minTotal", "suggestedQty"}

// OrderSuggestionUseCase calcula la lista de reposición: proyección de solo lectura sobre las existencias.
type OrderSuggestionUseCase struct {
	stock *StockUseCase
	xlsx  SuggestionRenderer
	pdf   SuggestionRenderer
}

// NewOrderSuggestionUseCase construye el caso de uso. xlsx y pdf pueden ser nil si no se exponen esos formatos.
func NewOrderSuggestionUseCase(stock *StockUseCase, xlsx, pdf SuggestionRenderer) *OrderSuggestionUseCase {
	return &OrderSuggestionUseCase{stock: stock, xlsx: xlsx, pdf: pdf}
}

// List devuelve una fila por producto (incluidas las que no necesitan pedido), en el orden del registro.
func (uc *OrderSuggestionUseCase) List(ctx context.Context, query string) ([]dto.OrderSuggestionRow, error) {
	views, err := uc.stock.views(ctx, query)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.OrderSuggestionRow, 0, len(views))
	for _, v := range views {
		total := v.level.Total()
		rows = append(rows, dto.OrderSuggestionRow{
			ProductID:    v.product.ID,
			SKU:          v.product.SKU,
			Name:         v.product.Name,
			MinTotal:     v.product.MinTotal,
			BackroomQty:  v.level.Backroom,
			ShopfloorQty: v.level.Shopfloor,
			TotalQty:     total,
			SuggestedQty: inventory.SuggestedQty(v.product.MinTotal, total),
		})
	}
	return rows, nil
}

// ExportRows filas con suggestedQty > 0, ordenadas por suggestedQty descendente y sku ascendente.
func (uc *OrderSuggestionUseCase) ExportRows(ctx context.Context, query string) ([]dto.OrderSuggestionRow, error) {
	rows, err := uc.List(ctx, query)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, r := range rows {
		if r.SuggestedQty > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SuggestedQty != out[j].SuggestedQty {
			return out[i].SuggestedQty > out[j].SuggestedQty
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

// ExportCSV genera el CSV de reposición con encabezado.
func (uc *OrderSuggestionUseCase) ExportCSV(ctx context.Context, query string) ([]byte, error) {
	rows, err := uc.ExportRows(ctx, query)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(suggestionCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.SKU,
			r.Name,
			strconv.FormatInt(r.BackroomQty, 10),
			strconv.FormatInt(r.ShopfloorQty, 10),
			strconv.FormatInt(r.TotalQty, 10),
			strconv.FormatInt(r.MinTotal, 10),
			strconv.FormatInt(r.SuggestedQty, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX genera la misma lista como hoja de cálculo.
func (uc *OrderSuggestionUseCase) ExportXLSX(ctx context.Context, query string) ([]byte, error) {
	return uc.render(ctx, query, uc.xlsx, "xlsx")
}

// ExportPDF genera la misma lista como documento PDF.
func (uc *OrderSuggestionUseCase) ExportPDF(ctx context.Context, query string) ([]byte, error) {
	return uc.render(ctx, query, uc.pdf, "pdf")
}

func (uc *OrderSuggestionUseCase) render(ctx context.Context, query string, r SuggestionRenderer, format string) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("exportación %s no configurada", format)
	}
	rows, err := uc.ExportRows(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.RenderOrderSuggestions(rows)
}
