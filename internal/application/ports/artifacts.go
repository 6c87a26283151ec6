package ports

import (
	"context"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// ArtifactStore escribe los artefactos persistentes por usuario. Devuelve la ruta escrita;
// los fallos de escritura envuelven domain.ErrIO.
type ArtifactStore interface {
	WriteCategories(ctx context.Context, username, categories string) (string, error)
	WriteSnapshot(ctx context.Context, username string, dataset *entity.Dataset) (string, error)
	WriteReport(ctx context.Context, username, filename string, data []byte) (string, error)
}

// ReportPDFGenerator renderiza un reporte a PDF en memoria.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, summary *entity.ReportSummary) ([]byte, error)
}
