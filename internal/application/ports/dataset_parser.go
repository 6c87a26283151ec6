package ports

import (
	"io"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// DatasetParser convierte un archivo cargado en el modelo de filas.
// Errores de formato deben envolver domain.ErrParse.
type DatasetParser interface {
	Parse(r io.Reader) (*entity.Dataset, error)
}
