package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Greeting        string `json:"greeting"`
	LowStockAlert   bool   `json:"low_stock_alert"` // min(stock) < min(reorden)
	AlertMessage    string `json:"alert_message"`
	TotalProducts   int    `json:"total_products"`   // productos distintos
	PendingReorders int    `json:"pending_reorders"` // filas con stock <= reorden

	SalesTrend       []SeriesPointDTO `json:"sales_trend"`        // ingreso por Month
	ProfitPerProduct []SeriesPointDTO `json:"profit_per_product"` // utilidad promedio
	StockLevels      []StockLevelDTO  `json:"stock_levels"`
	PredictedStock   ForecastDTO      `json:"predicted_stock"`
}

// SeriesPointDTO punto de una serie etiquetada.
type SeriesPointDTO struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// StockLevelDTO stock de una fila (no agregado).
type StockLevelDTO struct {
	Product    string `json:"product"`
	StockLevel int64  `json:"stock_level"`
}

// ForecastDTO serie de pronóstico. Placeholder=true indica datos sin valor predictivo.
type ForecastDTO struct {
	Placeholder bool    `json:"placeholder"`
	Source      string  `json:"source"`
	Values      []int64 `json:"values"`
}

// SalesTrendsDTO respuesta de GET /api/dashboard/sales-trends.
type SalesTrendsDTO struct {
	SeasonalRevenue    []SeriesPointDTO `json:"seasonal_revenue"`
	PredictiveInsights ForecastDTO      `json:"predictive_insights"`
}
