// Package analytics contiene los casos de uso del tablero principal y del
// análisis de tendencias de ventas.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/sales-dashboard/internal/domain/inventory"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

// ForecastPeriods puntos de la serie de stock pronosticado.
const ForecastPeriods = 12

const (
	alertLowStock = "Low stock for some products. Please restock!"
	alertNone     = "No alerts currently. All stock levels are sufficient!"
)

// DashboardUseCase arma las vistas de análisis a partir de la copia de trabajo de la sesión.
//
// Las agregaciones son en memoria; el pronóstico se delega en ports.Forecaster y corre
// en paralelo con ellas.
type DashboardUseCase struct {
	sessions   repository.SessionRepository
	forecaster ports.Forecaster
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sessions repository.SessionRepository, forecaster ports.Forecaster, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{sessions: sessions, forecaster: forecaster, log: log.Component("analytics")}
}

// Dashboard construye el DashboardDTO de la sesión.
//
//  1. Alerta de stock bajo: min(stock) < min(reorden)
//  2. Estadísticas: productos distintos y filas pendientes de reposición
//  3. Series: ingreso por Month, utilidad promedio por producto, stock por fila
//  4. Pronóstico de stock (placeholder)
func (uc *DashboardUseCase) Dashboard(ctx context.Context, sessionID string) (*dto.DashboardDTO, error) {
	session, ds, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	forecastCh := uc.forecastAsync(ctx, ds)

	low := domaininv.LowStockAlert(ds)
	msg := alertNone
	if low {
		msg = alertLowStock
	}

	stock := make([]dto.StockLevelDTO, len(ds.Records))
	for i, r := range ds.Records {
		stock[i] = dto.StockLevelDTO{Product: r.ProductSold, StockLevel: r.StockLevel}
	}

	out := &dto.DashboardDTO{
		Greeting:         fmt.Sprintf("Hi %s, here's the latest analysis of your inventory and sales.", session.CurrentUser),
		LowStockAlert:    low,
		AlertMessage:     msg,
		TotalProducts:    domaininv.DistinctProducts(ds),
		PendingReorders:  domaininv.PendingReorders(ds),
		SalesTrend:       sumBy(ds.Records, func(r entity.InventoryRecord) string { return r.Month }, revenue),
		ProfitPerProduct: meanBy(ds.Records, func(r entity.InventoryRecord) string { return r.ProductSold }, profit),
		StockLevels:      stock,
	}

	res := <-forecastCh
	if res.err != nil {
		return nil, res.err
	}
	out.PredictedStock = res.forecast
	return out, nil
}

// SalesTrends ingreso por temporada más la serie predictiva placeholder.
func (uc *DashboardUseCase) SalesTrends(ctx context.Context, sessionID string) (*dto.SalesTrendsDTO, error) {
	_, ds, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	forecastCh := uc.forecastAsync(ctx, ds)
	seasonal := sumBy(ds.Records, func(r entity.InventoryRecord) string { return r.Season }, revenue)

	res := <-forecastCh
	if res.err != nil {
		return nil, res.err
	}
	return &dto.SalesTrendsDTO{SeasonalRevenue: seasonal, PredictiveInsights: res.forecast}, nil
}

func (uc *DashboardUseCase) load(ctx context.Context, sessionID string) (*entity.Session, *entity.Dataset, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	ds, err := session.Dataset()
	if err != nil {
		return nil, nil, err
	}
	return session, ds, nil
}

type forecastResult struct {
	forecast dto.ForecastDTO
	err      error
}

func (uc *DashboardUseCase) forecastAsync(ctx context.Context, ds *entity.Dataset) <-chan forecastResult {
	ch := make(chan forecastResult, 1)
	go func() {
		f, err := uc.forecaster.Forecast(ctx, ds, ForecastPeriods)
		if err != nil {
			uc.log.Error().Err(err).Msg("pronóstico de stock")
			ch <- forecastResult{err: fmt.Errorf("pronóstico: %w", err)}
			return
		}
		ch <- forecastResult{forecast: dto.ForecastDTO{Placeholder: f.Placeholder, Source: f.Source, Values: f.Values}}
	}()
	return ch
}

// ── Agregaciones ─────────────────────────────────────────────────────────────

func revenue(r entity.InventoryRecord) decimal.Decimal { return r.TotalRevenue }
func profit(r entity.InventoryRecord) decimal.Decimal  { return r.Profit }

// sumBy suma value por clave; las claves salen en orden ascendente.
func sumBy(records []entity.InventoryRecord, key func(entity.InventoryRecord) string, value func(entity.InventoryRecord) decimal.Decimal) []dto.SeriesPointDTO {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		k := key(r)
		sums[k] = sums[k].Add(value(r))
	}
	return toSeries(sums)
}

// meanBy promedio de value por clave, en orden ascendente de clave.
func meanBy(records []entity.InventoryRecord, key func(entity.InventoryRecord) string, value func(entity.InventoryRecord) decimal.Decimal) []dto.SeriesPointDTO {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, r := range records {
		k := key(r)
		sums[k] = sums[k].Add(value(r))
		counts[k]++
	}
	for k, s := range sums {
		sums[k] = s.Div(decimal.NewFromInt(counts[k]))
	}
	return toSeries(sums)
}

func toSeries(m map[string]decimal.Decimal) []dto.SeriesPointDTO {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]dto.SeriesPointDTO, len(keys))
	for i, k := range keys {
		out[i] = dto.SeriesPointDTO{Label: k, Value: m[k]}
	}
	return out
}
