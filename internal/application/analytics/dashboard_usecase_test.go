package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

type fakeForecaster struct {
	periods int
	err     error
}

func (f *fakeForecaster) Forecast(_ context.Context, _ *entity.Dataset, periods int) (ports.Forecast, error) {
	f.periods = periods
	if f.err != nil {
		return ports.Forecast{}, f.err
	}
	values := make([]int64, periods)
	for i := range values {
		values[i] = 100
	}
	return ports.Forecast{Values: values, Placeholder: true, Source: "fake"}, nil
}

func rec(product, month, season string, stock, reorder int64, revenue, profit string) entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductSold:  product,
		StockLevel:   stock,
		ReorderLevel: reorder,
		Month:        month,
		Season:       season,
		TotalRevenue: decimal.RequireFromString(revenue),
		Profit:       decimal.RequireFromString(profit),
	}
}

func newTestUseCase(t *testing.T, data *entity.Dataset, f *fakeForecaster) *DashboardUseCase {
	t.Helper()
	sessions := memory.NewSessionRepository()
	require.NoError(t, sessions.Create(context.Background(), &entity.Session{
		ID: "sid", LoggedIn: true, CurrentUser: "alice", Data: data,
	}))
	return NewDashboardUseCase(sessions, f, logger.Nop())
}

func TestDashboard_EscenarioAlerta(t *testing.T) {
	data := &entity.Dataset{Records: []entity.InventoryRecord{
		rec("ProductA", "January", "Winter", 5, 10, "100", "10"),
		rec("ProductB", "February", "Winter", 50, 10, "200", "30"),
		rec("ProductA", "January", "Spring", 20, 10, "50", "20"),
	}}
	f := &fakeForecaster{}
	uc := newTestUseCase(t, data, f)

	out, err := uc.Dashboard(context.Background(), "sid")
	require.NoError(t, err)

	assert.Equal(t, "Hi alice, here's the latest analysis of your inventory and sales.", out.Greeting)
	assert.True(t, out.LowStockAlert, "min stock 5 < min reorden 10")
	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 1, out.PendingReorders)

	require.Len(t, out.SalesTrend, 2)
	assert.Equal(t, "February", out.SalesTrend[0].Label)
	assert.True(t, decimal.NewFromInt(200).Equal(out.SalesTrend[0].Value))
	assert.Equal(t, "January", out.SalesTrend[1].Label)
	assert.True(t, decimal.NewFromInt(150).Equal(out.SalesTrend[1].Value))

	require.Len(t, out.ProfitPerProduct, 2)
	assert.Equal(t, "ProductA", out.ProfitPerProduct[0].Label)
	assert.True(t, decimal.NewFromInt(15).Equal(out.ProfitPerProduct[0].Value))

	assert.Len(t, out.StockLevels, 3)
	assert.Equal(t, ForecastPeriods, f.periods)
	assert.True(t, out.PredictedStock.Placeholder)
	assert.Len(t, out.PredictedStock.Values, 12)
}

func TestDashboard_SinAlertaCuandoMinimosCoinciden(t *testing.T) {
	// stock 5 <= reorden 5 cuenta como pendiente, pero no dispara la alerta global
	data := &entity.Dataset{Records: []entity.InventoryRecord{
		rec("ProductA", "January", "Winter", 5, 5, "1", "1"),
		rec("ProductB", "January", "Winter", 50, 10, "1", "1"),
	}}
	uc := newTestUseCase(t, data, &fakeForecaster{})

	out, err := uc.Dashboard(context.Background(), "sid")
	require.NoError(t, err)
	assert.False(t, out.LowStockAlert)
	assert.Equal(t, alertNone, out.AlertMessage)
	assert.Equal(t, 1, out.PendingReorders)
}

func TestDashboard_SinDataset(t *testing.T) {
	uc := newTestUseCase(t, nil, &fakeForecaster{})
	_, err := uc.Dashboard(context.Background(), "sid")
	assert.ErrorIs(t, err, domain.ErrDatasetNotReady)
	_, err = uc.SalesTrends(context.Background(), "sid")
	assert.ErrorIs(t, err, domain.ErrDatasetNotReady)
}

func TestDashboard_ErrorDePronostico(t *testing.T) {
	data := &entity.Dataset{Records: []entity.InventoryRecord{rec("A", "January", "Winter", 1, 1, "1", "1")}}
	boom := errors.New("modelo no disponible")
	uc := newTestUseCase(t, data, &fakeForecaster{err: boom})

	_, err := uc.Dashboard(context.Background(), "sid")
	assert.ErrorIs(t, err, boom)
}

func TestSalesTrends_IngresoPorTemporada(t *testing.T) {
	data := &entity.Dataset{Records: []entity.InventoryRecord{
		rec("A", "January", "Winter", 1, 1, "100", "0"),
		rec("B", "April", "Spring", 1, 1, "40", "0"),
		rec("C", "February", "Winter", 1, 1, "60", "0"),
	}}
	uc := newTestUseCase(t, data, &fakeForecaster{})

	out, err := uc.SalesTrends(context.Background(), "sid")
	require.NoError(t, err)
	require.Len(t, out.SeasonalRevenue, 2)
	assert.Equal(t, "Spring", out.SeasonalRevenue[0].Label)
	assert.True(t, decimal.NewFromInt(40).Equal(out.SeasonalRevenue[0].Value))
	assert.Equal(t, "Winter", out.SeasonalRevenue[1].Label)
	assert.True(t, decimal.NewFromInt(160).Equal(out.SeasonalRevenue[1].Value))
	assert.True(t, out.PredictiveInsights.Placeholder)
}
