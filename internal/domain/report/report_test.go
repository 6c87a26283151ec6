package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/report"
)

func sale(product, location, month, season string, revenue string, qty int64) entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductSold:  product,
		Location:     location,
		Month:        month,
		Season:       season,
		TotalRevenue: decimal.RequireFromString(revenue),
		QuantitySold: qty,
	}
}

func salesFixture() []entity.InventoryRecord {
	return []entity.InventoryRecord{
		sale("Tornillo", "Bogotá", "2024-01-15", "Winter", "100", 10),
		sale("Tuerca", "Bogotá", "January", "Winter", "50.5", 5),
		sale("Tornillo", "Cali", "2024-02-03", "Winter", "300", 30),
		sale("Arandela", "Cali", "03/10/2024", "Spring", "20", 2),
		sale("Tornillo", "Bogotá", "sin fecha", "Spring", "999", 1),
	}
}

func assertSortedDesc(t *testing.T, s *entity.ReportSummary) {
	t.Helper()
	for i := 0; i+1 < len(s.Rows); i++ {
		assert.True(t, s.Rows[i].TotalRevenue.GreaterThanOrEqual(s.Rows[i+1].TotalRevenue),
			"fila %d debe tener ingreso >= fila %d", i, i+1)
	}
}

func TestBuild_Monthly(t *testing.T) {
	records := salesFixture()
	s, err := report.Build(entity.ReportMonthly, records)
	require.NoError(t, err)

	assert.Equal(t, []string{"Month", "Location", "Total Revenue", "quantity sold", "Product Sold"}, s.Columns)
	require.Len(t, s.Rows, 3, "la fila con mes inválido se descarta")
	assertSortedDesc(t, s)

	assert.Equal(t, []string{"February", "Cali", "300", "30", "1"}, s.Cells(0))
	assert.Equal(t, []string{"January", "Bogotá", "150.5", "15", "2"}, s.Cells(1))
	assert.Equal(t, []string{"March", "Cali", "20", "2", "1"}, s.Cells(2))

	assert.Equal(t, "2024-01-15", records[0].Month, "el dataset de trabajo no se modifica")
}

func TestBuild_Seasonal(t *testing.T) {
	s, err := report.Build(entity.ReportSeasonal, salesFixture())
	require.NoError(t, err)

	require.Len(t, s.Rows, 4)
	assertSortedDesc(t, s)
	assert.Equal(t, []string{"Spring", "Bogotá", "999", "1", "1"}, s.Cells(0))
	assert.Equal(t, []string{"Winter", "Cali", "300", "30", "1"}, s.Cells(1))
	assert.Equal(t, []string{"Winter", "Bogotá", "150.5", "15", "2"}, s.Cells(2))
}

func TestBuild_Yearly(t *testing.T) {
	s, err := report.Build(entity.ReportYearly, salesFixture())
	require.NoError(t, err)

	assert.Equal(t, []string{"Year", "Total Revenue"}, s.Columns)
	require.Len(t, s.Rows, 2)
	// 1469.5 × 1.05
	expected := decimal.RequireFromString("1542.975")
	for i, y := range []int{2023, 2024} {
		assert.Equal(t, y, s.Rows[i].Year)
		assert.True(t, s.Rows[i].TotalRevenue.Equal(expected), "got %s", s.Rows[i].TotalRevenue)
	}
}

func TestBuild_InventoryPerformance(t *testing.T) {
	s, err := report.Build(entity.ReportInventoryPerformance, salesFixture())
	require.NoError(t, err)

	assert.Equal(t, []string{"Product Sold", "quantity sold", "Total Revenue"}, s.Columns)
	require.Len(t, s.Rows, 3)
	assertSortedDesc(t, s)
	assert.Equal(t, []string{"Tornillo", "41", "1399"}, s.Cells(0))
	assert.Equal(t, []string{"Tuerca", "5", "50.5"}, s.Cells(1))
	assert.Equal(t, []string{"Arandela", "2", "20"}, s.Cells(2))
}

func TestBuild_EmpatesConservanOrdenDeClave(t *testing.T) {
	records := []entity.InventoryRecord{
		sale("B", "X", "1", "S", "10", 1),
		sale("A", "X", "1", "S", "10", 1),
	}
	s, err := report.Build(entity.ReportInventoryPerformance, records)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Rows[0].ProductSold)
	assert.Equal(t, "B", s.Rows[1].ProductSold)
}

func TestBuild_DatasetVacio(t *testing.T) {
	for _, rt := range entity.ReportTypes {
		s, err := report.Build(rt, nil)
		require.NoError(t, err)
		if rt == entity.ReportYearly {
			assert.Len(t, s.Rows, 2)
			continue
		}
		assert.Empty(t, s.Rows)
	}
}

func TestBuild_TipoDesconocido(t *testing.T) {
	_, err := report.Build("Weekly", salesFixture())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuild_MonthlyConFormatosDeFechaExcel(t *testing.T) {
	records := []entity.InventoryRecord{
		sale("A", "North", "15-Mar-24", "Spring", "10", 1),
		sale("A", "North", "15-Mar", "Spring", "20", 1),
		sale("A", "North", "3/15/24 00:00", "Spring", "30", 1),
	}
	s, err := report.Build(entity.ReportMonthly, records)
	require.NoError(t, err)
	require.Len(t, s.Rows, 1, "ninguna fila se descarta")
	assert.Equal(t, "March", s.Rows[0].Month)
	assert.True(t, decimal.NewFromInt(60).Equal(s.Rows[0].TotalRevenue))
}

func TestParseType(t *testing.T) {
	cases := map[string]entity.ReportType{
		"Monthly":               entity.ReportMonthly,
		"seasonal":              entity.ReportSeasonal,
		"YEARLY":                entity.ReportYearly,
		"inventory-performance": entity.ReportInventoryPerformance,
		"Inventory Performance": entity.ReportInventoryPerformance,
		"inventory_performance": entity.ReportInventoryPerformance,
	}
	for in, want := range cases {
		got, err := report.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseType("daily")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNormalizeMonth(t *testing.T) {
	cases := map[string]string{
		"2024-03-01":          "March",
		"2024-03-01 10:00:00": "March",
		"12/25/2023":          "December",
		"1/5/24":              "January",
		"Aug":                 "August",
		"september":           "September",
		"Jan 2024":            "January",
		"2024-07":             "July",
		"4":                   "April",
		"45292":               "January", // serial Excel de 2024-01-01
		"15-Mar-24":           "March",
		"15-Mar":              "March",
		"3/15/24 00:00":       "March",
		"Mar-24":              "March",
		"3/15/2024 13:45":     "March",
	}
	for in, want := range cases {
		got, ok := report.NormalizeMonth(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "   ", "sin fecha", "13/45/2024"} {
		_, ok := report.NormalizeMonth(in)
		assert.False(t, ok, in)
	}
}
