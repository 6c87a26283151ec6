package ports

import (
	"context"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// Forecast serie de stock pronosticada.
type Forecast struct {
	Values      []int64
	Placeholder bool   // true: la serie no es un pronóstico real
	Source      string // identificador del adaptador
}

// Forecaster puerto de pronóstico de stock. La única implementación actual es un
// placeholder aleatorio; un modelo real debe implementar esta misma interfaz.
type Forecaster interface {
	Forecast(ctx context.Context, dataset *entity.Dataset, periods int) (Forecast, error)
}
