package salesimport

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row fila de datos del archivo (las líneas en blanco y el encabezado no generan Row).
type Row struct {
	Line   int // número de línea en el archivo, desde 1
	SKU    string
	Qty    int64
	Valid  bool
	Reason string // motivo de invalidez
}

// ParseResult filas del archivo con sus contadores.
type ParseResult struct {
	Rows        []Row
	RowsRead    int
	RowsValid   int
	RowsInvalid int
	// TotalQuantityRequested suma de cantidades de las filas válidas.
	TotalQuantityRequested int64
}

// DecodeText quita el BOM UTF-8 y, si el contenido no es UTF-8 válido, lo decodifica como Windows-1252
// (formato habitual de las exportaciones del POS).
func DecodeText(raw []byte) string {
	b := bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(decoded)
}

// ParseCSV interpreta el archivo de ventas SKU,cantidad. El separador puede ser ',' o ';' por línea.
// Solo la primera línea no vacía puede ser encabezado: lo es si tiene al menos dos campos y el segundo
// no es un entero.
func ParseCSV(raw []byte) ParseResult {
	var (
		res        ParseResult
		seenFirst  bool
		lineNumber int
	)
	for _, line := range strings.Split(DecodeText(raw), "\n") {
		lineNumber++
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if !seenFirst {
			seenFirst = true
			if len(fields) >= 2 && !isInteger(fields[1]) {
				continue
			}
		}

		res.RowsRead++
		row := parseRow(lineNumber, fields)
		if row.Valid {
			res.RowsValid++
			res.TotalQuantityRequested += row.Qty
		} else {
			res.RowsInvalid++
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

func parseRow(line int, fields []string) Row {
	row := Row{Line: line}
	if len(fields) != 2 {
		row.Reason = "se esperaban 2 campos, hay " + strconv.Itoa(len(fields))
		return row
	}
	row.SKU = fields[0]
	if row.SKU == "" {
		row.Reason = "sku vacío"
		return row
	}
	qty, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		row.Reason = "cantidad no entera"
		return row
	}
	if qty <= 0 {
		row.Reason = "cantidad debe ser mayor que 0"
		return row
	}
	row.Qty = qty
	row.Valid = true
	return row
}

// splitFields separa por ';' si la línea lo contiene, si no por ','. Quita espacios y comillas dobles.
func splitFields(line string) []string {
	sep := ","
	if strings.Contains(line, ";") {
		sep = ";"
	}
	parts := strings.Split(line, sep)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
			p = strings.TrimSpace(p[1 : len(p)-1])
		}
		parts[i] = p
	}
	return parts
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
