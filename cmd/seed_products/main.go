// seed_products genera un script SQL para poblar el registro de productos a partir del catálogo
// exportado por el POS (CSV sku;nombre;unidad;minimo, con o sin encabezado).
//
// Uso: go run ./cmd/seed_products [ruta/catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv del directorio actual y escribe seed_products.sql.
// Los archivos que no son UTF-8 se leen como ISO-8859-1.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogItem struct {
	SKU      string
	Name     string
	Unit     string
	MinTotal int64
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := "seed_products.sql"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir catálogo: %v\n", err)
		os.Exit(1)
	}
	items, skipped, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "Omitida: %s\n", s)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, csvPath, items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d filas omitidas\n", outPath, len(items), len(skipped))
}

// parseCatalog devuelve los productos ordenados por SKU; un SKU repetido conserva la última fila.
func parseCatalog(raw []byte) ([]catalogItem, []string, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	if firstLine, _, _ := bytes.Cut(raw, []byte("\n")); !bytes.Contains(firstLine, []byte(";")) {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	bySKU := make(map[string]catalogItem)
	var skipped []string
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku") {
			continue // encabezado
		}
		if len(rec) < 3 {
			skipped = append(skipped, fmt.Sprintf("línea %d: se esperaban al menos 3 campos", line))
			continue
		}
		item := catalogItem{
			SKU:  strings.TrimSpace(rec[0]),
			Name: strings.TrimSpace(rec[1]),
			Unit: strings.TrimSpace(rec[2]),
		}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			n, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
			if err != nil || n < 0 {
				skipped = append(skipped, fmt.Sprintf("línea %d: mínimo inválido %q", line, rec[3]))
				continue
			}
			item.MinTotal = n
		}
		if item.SKU == "" || item.Name == "" || item.Unit == "" {
			skipped = append(skipped, fmt.Sprintf("línea %d: sku, nombre y unidad son obligatorios", line))
			continue
		}
		bySKU[item.SKU] = item
	}

	items := make([]catalogItem, 0, len(bySKU))
	for _, it := range bySKU {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })
	return items, skipped, nil
}

func writeSQL(w io.Writer, source string, items []catalogItem) error {
	var b strings.Builder
	b.WriteString("-- Registro de productos\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)
	if len(items) > 0 {
		b.WriteString("INSERT INTO products (sku, name, unit, min_total) VALUES\n")
		for i, it := range items {
			sep := ","
			if i == len(items)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d)%s\n", escapeSQL(it.SKU), escapeSQL(it.Name), escapeSQL(it.Unit), it.MinTotal, sep)
		}
		b.WriteString("ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, unit = EXCLUDED.unit,\n")
		b.WriteString("  min_total = EXCLUDED.min_total, updated_at = now();\n\n")
	}
	b.WriteString("-- Existencias en cero para los productos nuevos\n")
	b.WriteString("INSERT INTO stock_levels (product_id)\n")
	b.WriteString("SELECT id FROM products\n")
	b.WriteString("ON CONFLICT (product_id) DO NOTHING;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
