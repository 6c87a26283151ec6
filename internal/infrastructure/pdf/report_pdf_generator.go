// Package pdf renderiza los reportes de ventas a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: "{tipo} Sales Report"           │  Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una celda de ancho fijo por columna del reporte      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECOMENDACIONES                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	domainreport "github.com/jhoicas/sales-dashboard/internal/domain/report"
)

// cellWidth ancho de cada celda en la grilla de 12 columnas de maroto.
const cellWidth = 2

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, summary *entity.ReportSummary) ([]byte, error) {
	title := fmt.Sprintf("%s Sales Report", summary.Type)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(summary.Columns))
	for i := range summary.Rows {
		m.AddRows(tableBodyRow(summary.Cells(i)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range recommendationRows() {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+now.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: nombres de columna sobre fondo azul.
func tableHeaderRow(columns []string) core.Row {
	cols := make([]core.Col, len(columns))
	for i, c := range columns {
		cols[i] = col.New(cellWidth).
			Add(text.New(c, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorWhite, Top: 2, Left: 1, Right: 1,
			})).
			WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(cols...)
}

// tableBodyRow: una fila por registro del reporte.
func tableBodyRow(cells []string) core.Row {
	cols := make([]core.Col, len(cells))
	for i, v := range cells {
		cols[i] = col.New(cellWidth).Add(text.New(v, props.Text{
			Size: 8, Align: align.Center, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(cols...)
}

func recommendationRows() []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("To balance product performance:", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, rec := range domainreport.Recommendations {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New("- "+rec, props.Text{
			Size: 8, Top: 1, Color: colorGray,
		}))))
	}
	return rows
}
