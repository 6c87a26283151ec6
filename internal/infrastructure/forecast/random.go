// Package forecast contiene los adaptadores de ports.Forecaster.
package forecast

import (
	"context"
	"math/rand/v2"

	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// Rango de la serie placeholder: [PlaceholderMin, PlaceholderMax).
const (
	PlaceholderMin = 50
	PlaceholderMax = 200
	SourceRandom   = "random-placeholder"
)

var _ ports.Forecaster = (*RandomForecaster)(nil)

// RandomForecaster devuelve enteros aleatorios sin relación con el dataset.
// La salida siempre va marcada como Placeholder.
type RandomForecaster struct {
	intN func(n int) int
}

// NewRandomForecaster construye el placeholder.
func NewRandomForecaster() *RandomForecaster {
	return &RandomForecaster{intN: rand.IntN}
}

func (f *RandomForecaster) Forecast(ctx context.Context, _ *entity.Dataset, periods int) (ports.Forecast, error) {
	if err := ctx.Err(); err != nil {
		return ports.Forecast{}, err
	}
	values := make([]int64, max(periods, 0))
	for i := range values {
		values[i] = int64(PlaceholderMin + f.intN(PlaceholderMax-PlaceholderMin))
	}
	return ports.Forecast{Values: values, Placeholder: true, Source: SourceRandom}, nil
}
