// Package spreadsheet lee el archivo de inventario (.xlsx) y lo convierte en un Dataset.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"

	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

var _ ports.DatasetParser = (*ExcelParser)(nil)

// ExcelParser lee la primera hoja; la primera fila es el encabezado.
// Los encabezados se comparan sin distinguir mayúsculas ni espacios alrededor.
type ExcelParser struct{}

// NewExcelParser construye el parser.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse devuelve domain.ErrParse envuelto ante archivos ilegibles, columnas faltantes o celdas inválidas.
// Las columnas numéricas se leen con el valor crudo de la celda; las de texto con el valor formateado
// (así una fecha en Month conserva el formato que ve el usuario).
func (p *ExcelParser) Parse(r io.Reader) (*entity.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no es un archivo xlsx válido: %v", domain.ErrParse, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrParse)
	}
	display, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %q: %v", domain.ErrParse, sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %q: %v", domain.ErrParse, sheet, err)
	}
	if len(display) == 0 {
		return nil, fmt.Errorf("%w: la hoja está vacía", domain.ErrParse)
	}

	cols, err := columnIndex(display[0])
	if err != nil {
		return nil, err
	}

	ds := &entity.Dataset{Records: make([]entity.InventoryRecord, 0, len(display)-1)}
	for i := 1; i < len(display); i++ {
		if blankRow(display[i]) {
			continue
		}
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		rec, err := parseRow(display[i], rawRow, cols, i+1)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// columnIndex ubica cada columna requerida. cases.Caser no es seguro para uso concurrente,
// por eso se crea uno por llamada.
func columnIndex(header []string) (map[string]int, error) {
	fold := cases.Fold()
	byFolded := make(map[string]int, len(header))
	for i, h := range header {
		key := fold.String(strings.TrimSpace(h))
		if _, dup := byFolded[key]; !dup {
			byFolded[key] = i
		}
	}
	cols := make(map[string]int, len(entity.RecordColumns))
	var missing []string
	for _, name := range entity.RecordColumns {
		idx, ok := byFolded[fold.String(name)]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas: %s", domain.ErrParse, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(display, raw []string, cols map[string]int, line int) (entity.InventoryRecord, error) {
	text := func(col string) string { return cell(display, cols[col]) }
	num := func(col string) string {
		if v := cell(raw, cols[col]); v != "" {
			return v
		}
		return text(col)
	}

	rec := entity.InventoryRecord{
		ProductSold: text(entity.ColProductSold),
		Location:    text(entity.ColLocation),
		Month:       text(entity.ColMonth),
		Season:      text(entity.ColSeason),
	}
	var err error
	if rec.StockLevel, err = parseCount(num(entity.ColStockLevels), entity.ColStockLevels, line); err != nil {
		return rec, err
	}
	if rec.ReorderLevel, err = parseCount(num(entity.ColReorderLevels), entity.ColReorderLevels, line); err != nil {
		return rec, err
	}
	if rec.QuantitySold, err = parseInt(num(entity.ColQuantitySold), entity.ColQuantitySold, line); err != nil {
		return rec, err
	}
	if rec.TotalRevenue, err = parseDecimal(num(entity.ColTotalRevenue), entity.ColTotalRevenue, line); err != nil {
		return rec, err
	}
	if rec.Profit, err = parseDecimal(num(entity.ColProfit), entity.ColProfit, line); err != nil {
		return rec, err
	}
	return rec, nil
}

// parseInt acepta enteros escritos como "5" o "5.0". Celda vacía = 0.
func parseInt(v, col string, line int) (int64, error) {
	if v == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: fila %d, columna %q: %q no es un entero", domain.ErrParse, line, col, v)
	}
	return d.IntPart(), nil
}

// parseCount como parseInt pero rechaza negativos (stock y nivel de reorden).
func parseCount(v, col string, line int) (int64, error) {
	n, err := parseInt(v, col, line)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: fila %d, columna %q: no puede ser negativo", domain.ErrParse, line, col)
	}
	return n, nil
}

func parseDecimal(v, col string, line int) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: fila %d, columna %q: %q no es numérico", domain.ErrParse, line, col, v)
	}
	return d, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
