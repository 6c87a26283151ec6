package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/inventory"
)

func rec(product, location string, stock, reorder int64) entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductSold:  product,
		Location:     location,
		StockLevel:   stock,
		ReorderLevel: reorder,
		TotalRevenue: decimal.NewFromInt(100),
	}
}

func sampleDataset() *entity.Dataset {
	return &entity.Dataset{Records: []entity.InventoryRecord{
		rec("Tornillo", "Bogotá", 5, 10),
		rec("Tuerca", "Bogotá", 20, 10),
		rec("Tornillo", "Cali", 12, 10),
		rec("Arandela", "Cali", 3, 3),
	}}
}

func products(rows []entity.InventoryRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ProductSold + "@" + r.Location
	}
	return out
}

func TestFilter_SinCriteriosDevuelveTodo(t *testing.T) {
	ds := sampleDataset()
	got := inventory.Filter(ds, inventory.Criteria{})
	assert.Equal(t, ds.Records, got)
}

func TestFilter_ProductoYUbicacionCombinados(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, []string{"Tornillo@Bogotá", "Tornillo@Cali"},
		products(inventory.Filter(ds, inventory.Criteria{Product: "Tornillo"})))
	assert.Equal(t, []string{"Tornillo@Cali", "Arandela@Cali"},
		products(inventory.Filter(ds, inventory.Criteria{Location: "Cali"})))
	assert.Equal(t, []string{"Tornillo@Cali"},
		products(inventory.Filter(ds, inventory.Criteria{Product: "Tornillo", Location: "Cali"})))
	assert.Empty(t, inventory.Filter(ds, inventory.Criteria{Product: "Tuerca", Location: "Cali"}))
	assert.Empty(t, inventory.Filter(ds, inventory.Criteria{Product: "Inexistente"}))
}

func TestFilter_BajoReordenSobreSubconjunto(t *testing.T) {
	ds := sampleDataset()

	got := inventory.Filter(ds, inventory.Criteria{Location: "Cali", BelowReorder: true})
	assert.Equal(t, []string{"Arandela@Cali"}, products(got), "stock == reorden también dispara la alerta")

	view := inventory.Filter(ds, inventory.Criteria{Product: "Tornillo"})
	alerts := inventory.ReorderAlerts(view)
	for _, r := range view {
		assert.Equal(t, r.StockLevel <= r.ReorderLevel, containsRecord(alerts, r))
	}
}

func containsRecord(rows []entity.InventoryRecord, r entity.InventoryRecord) bool {
	for _, x := range rows {
		if x.ProductSold == r.ProductSold && x.Location == r.Location {
			return true
		}
	}
	return false
}

func TestIndex_OpcionesEnOrdenDeAparicion(t *testing.T) {
	ix := inventory.NewIndex(sampleDataset())
	assert.Equal(t, []string{"Tornillo", "Tuerca", "Arandela"}, ix.Products())
	assert.Equal(t, []string{"Bogotá", "Cali"}, ix.Locations())
}

func TestUpdateStock_AfectaTodasLasUbicaciones(t *testing.T) {
	ds := sampleDataset()

	n, err := inventory.UpdateStock(ds, "Tornillo", 42)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, r := range inventory.Filter(ds, inventory.Criteria{Product: "Tornillo"}) {
		assert.EqualValues(t, 42, r.StockLevel)
	}
	assert.EqualValues(t, 20, ds.Records[1].StockLevel, "otros productos no cambian")
}

func TestUpdateStock_Validaciones(t *testing.T) {
	ds := sampleDataset()

	_, err := inventory.UpdateStock(ds, "Tornillo", -1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = inventory.UpdateStock(ds, "Clavo", 3)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetGlobalReorderLevel(t *testing.T) {
	ds := sampleDataset()

	require.NoError(t, inventory.SetGlobalReorderLevel(ds, 7))
	for _, r := range ds.Records {
		assert.EqualValues(t, 7, r.ReorderLevel)
	}

	assert.ErrorIs(t, inventory.SetGlobalReorderLevel(ds, 0), domain.ErrValidation)
}

func TestAddProduct_CalculaIngreso(t *testing.T) {
	ds := sampleDataset()

	r, err := inventory.AddProduct(ds, "Widget", 10, decimal.RequireFromString("2.5"))
	require.NoError(t, err)

	require.Equal(t, 5, ds.Len())
	last := ds.Records[4]
	assert.Equal(t, r, last)
	assert.Equal(t, "Widget", last.ProductSold)
	assert.True(t, last.TotalRevenue.Equal(decimal.RequireFromString("25.0")))
	assert.EqualValues(t, 10, last.QuantitySold)
	assert.Equal(t, entity.DefaultLocation, last.Location)
}

func TestAddProduct_Validaciones(t *testing.T) {
	cases := []struct {
		name     string
		product  string
		quantity int64
		price    decimal.Decimal
	}{
		{"nombre vacío", "  ", 1, decimal.NewFromInt(1)},
		{"cantidad cero", "Widget", 0, decimal.NewFromInt(1)},
		{"precio negativo", "Widget", 1, decimal.NewFromInt(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := sampleDataset()
			_, err := inventory.AddProduct(ds, tc.product, tc.quantity, tc.price)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 4, ds.Len(), "no debe agregar filas")
		})
	}
}

func TestAddProduct_PrecioCeroPermitido(t *testing.T) {
	ds := sampleDataset()
	r, err := inventory.AddProduct(ds, "Muestra", 3, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, r.TotalRevenue.IsZero())
}

// Escenario del dashboard: ProductA (5/10) y ProductB (20/10).
func TestStats_EscenarioAlertaDashboard(t *testing.T) {
	ds := &entity.Dataset{Records: []entity.InventoryRecord{
		rec("ProductA", "X", 5, 10),
		rec("ProductB", "X", 20, 10),
	}}

	assert.True(t, inventory.LowStockAlert(ds))
	assert.Equal(t, 1, inventory.PendingReorders(ds))
	assert.Equal(t, 2, inventory.DistinctProducts(ds))

	got := inventory.Filter(ds, inventory.Criteria{BelowReorder: true})
	assert.Equal(t, []string{"ProductA@X"}, products(got))
}

func TestLowStockAlert_SinAlerta(t *testing.T) {
	ds := &entity.Dataset{Records: []entity.InventoryRecord{
		rec("A", "X", 10, 10),
		rec("B", "X", 30, 12),
	}}
	assert.False(t, inventory.LowStockAlert(ds))
	assert.False(t, inventory.LowStockAlert(&entity.Dataset{}))
}
