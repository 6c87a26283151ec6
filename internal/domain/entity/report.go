package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ReportType variantes del generador de reportes.
type ReportType string

const (
	ReportMonthly              ReportType = "Monthly"
	ReportSeasonal             ReportType = "Seasonal"
	ReportYearly               ReportType = "Yearly"
	ReportInventoryPerformance ReportType = "Inventory Performance"
)

// ReportTypes catálogo en el orden del selector.
var ReportTypes = []ReportType{ReportMonthly, ReportSeasonal, ReportYearly, ReportInventoryPerformance}

// ReportRow fila agregada. Solo los campos de las columnas del reporte son significativos.
type ReportRow struct {
	Month        string
	Season       string
	Location     string
	ProductSold  string
	Year         int
	TotalRevenue decimal.Decimal
	QuantitySold int64
	ProductCount int64
}

// ReportSummary agregación derivada, no persistente, ordenada por Total Revenue descendente.
type ReportSummary struct {
	Type    ReportType
	Columns []string
	Rows    []ReportRow
}

// Cells devuelve los valores de la fila i en el orden de Columns.
func (s *ReportSummary) Cells(i int) []string {
	row := s.Rows[i]
	out := make([]string, len(s.Columns))
	for j, col := range s.Columns {
		out[j] = row.Value(s.Type, col)
	}
	return out
}

// Value formatea una columna de la fila. En los reportes agrupados "Product Sold" es un conteo,
// salvo en Inventory Performance donde es la clave del grupo.
func (r ReportRow) Value(t ReportType, col string) string {
	switch col {
	case ColMonth:
		return r.Month
	case ColSeason:
		return r.Season
	case ColLocation:
		return r.Location
	case ColYear:
		return strconv.Itoa(r.Year)
	case ColTotalRevenue:
		return r.TotalRevenue.String()
	case ColQuantitySold:
		return strconv.FormatInt(r.QuantitySold, 10)
	case ColProductSold:
		if t == ReportInventoryPerformance {
			return r.ProductSold
		}
		return strconv.FormatInt(r.ProductCount, 10)
	}
	return ""
}
