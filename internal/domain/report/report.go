// Package report implementa la máquina de estados del generador de reportes:
// cada tipo define su agrupación y sus columnas, y todas las salidas se ordenan
// por Total Revenue descendente.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// YearlyProjection factor plano aplicado al ingreso total en el reporte anual.
var YearlyProjection = decimal.RequireFromString("1.05")

// ReportYears años fijos del reporte anual.
var ReportYears = []int{2023, 2024}

// Recommendations sugerencias generales que acompañan a cualquier reporte.
var Recommendations = []string{
	"Analyze sales trends to identify high-performing product categories.",
	"Allocate marketing resources accordingly to boost sales for underperforming categories.",
	"Regularly review inventory to avoid overstocking products with low demand.",
}

// Columns devuelve las columnas de salida de cada tipo de reporte.
func Columns(t entity.ReportType) []string {
	switch t {
	case entity.ReportMonthly:
		return []string{entity.ColMonth, entity.ColLocation, entity.ColTotalRevenue, entity.ColQuantitySold, entity.ColProductSold}
	case entity.ReportSeasonal:
		return []string{entity.ColSeason, entity.ColLocation, entity.ColTotalRevenue, entity.ColQuantitySold, entity.ColProductSold}
	case entity.ReportYearly:
		return []string{entity.ColYear, entity.ColTotalRevenue}
	case entity.ReportInventoryPerformance:
		return []string{entity.ColProductSold, entity.ColQuantitySold, entity.ColTotalRevenue}
	}
	return nil
}

// ParseType acepta el nombre del reporte o su alias de URL ("inventory-performance").
func ParseType(s string) (entity.ReportType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	for _, t := range entity.ReportTypes {
		if strings.ToLower(string(t)) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: tipo de reporte desconocido %q", domain.ErrValidation, s)
}

// Build agrega records según el tipo de reporte. No modifica records.
func Build(t entity.ReportType, records []entity.InventoryRecord) (*entity.ReportSummary, error) {
	var rows []entity.ReportRow
	switch t {
	case entity.ReportMonthly:
		rows = groupByPair(records, func(r entity.InventoryRecord) (string, bool) {
			return NormalizeMonth(r.Month)
		}, func(row *entity.ReportRow, key string) { row.Month = key })
	case entity.ReportSeasonal:
		rows = groupByPair(records, func(r entity.InventoryRecord) (string, bool) {
			return r.Season, true
		}, func(row *entity.ReportRow, key string) { row.Season = key })
	case entity.ReportYearly:
		rows = yearly(records)
	case entity.ReportInventoryPerformance:
		rows = byProduct(records)
	default:
		return nil, fmt.Errorf("%w: tipo de reporte desconocido %q", domain.ErrValidation, t)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})

	return &entity.ReportSummary{Type: t, Columns: Columns(t), Rows: rows}, nil
}

type pairKey struct{ first, location string }

// groupByPair agrupa por (clave, Location) sumando ingreso y cantidad y contando productos.
// Las filas cuya clave no se puede derivar se descartan. Los grupos salen ordenados por clave.
func groupByPair(
	records []entity.InventoryRecord,
	key func(entity.InventoryRecord) (string, bool),
	assign func(*entity.ReportRow, string),
) []entity.ReportRow {
	groups := make(map[pairKey]*entity.ReportRow)
	var keys []pairKey
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		pk := pairKey{first: k, location: r.Location}
		g, exists := groups[pk]
		if !exists {
			g = &entity.ReportRow{Location: r.Location, TotalRevenue: decimal.Zero}
			assign(g, k)
			groups[pk] = g
			keys = append(keys, pk)
		}
		g.TotalRevenue = g.TotalRevenue.Add(r.TotalRevenue)
		g.QuantitySold += r.QuantitySold
		if r.ProductSold != "" {
			g.ProductCount++
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].first != keys[j].first {
			return keys[i].first < keys[j].first
		}
		return keys[i].location < keys[j].location
	})
	rows := make([]entity.ReportRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *groups[k])
	}
	return rows
}

func byProduct(records []entity.InventoryRecord) []entity.ReportRow {
	groups := make(map[string]*entity.ReportRow)
	var names []string
	for _, r := range records {
		g, ok := groups[r.ProductSold]
		if !ok {
			g = &entity.ReportRow{ProductSold: r.ProductSold, TotalRevenue: decimal.Zero}
			groups[r.ProductSold] = g
			names = append(names, r.ProductSold)
		}
		g.TotalRevenue = g.TotalRevenue.Add(r.TotalRevenue)
		g.QuantitySold += r.QuantitySold
	}
	sort.Strings(names)
	rows := make([]entity.ReportRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, *groups[n])
	}
	return rows
}

// yearly no reparte por año: ambos años muestran el total proyectado.
func yearly(records []entity.InventoryRecord) []entity.ReportRow {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalRevenue)
	}
	projected := total.Mul(YearlyProjection)
	rows := make([]entity.ReportRow, 0, len(ReportYears))
	for _, y := range ReportYears {
		rows = append(rows, entity.ReportRow{Year: y, TotalRevenue: projected})
	}
	return rows
}
