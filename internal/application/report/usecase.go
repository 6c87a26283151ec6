package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	domainreport "github.com/jhoicas/sales-dashboard/internal/domain/report"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

// Export archivo generado listo para descarga.
type Export struct {
	Filename    string // nombre de descarga, p. ej. "Inventory Performance_sales_report.pdf"
	ContentType string
	Data        []byte
	Path        string // ruta en disco; vacío si no se persistió
}

// ReportUseCase genera reportes sobre la copia de trabajo de la sesión y los exporta a CSV o PDF.
type ReportUseCase struct {
	sessions  repository.SessionRepository
	pdf       ports.ReportPDFGenerator
	artifacts ports.ArtifactStore
	log       *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sessions repository.SessionRepository, pdf ports.ReportPDFGenerator, artifacts ports.ArtifactStore, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{sessions: sessions, pdf: pdf, artifacts: artifacts, log: log.Component("report")}
}

// Filename nombre de descarga del reporte: "{tipo}_sales_report.{ext}".
func Filename(t entity.ReportType, ext string) string {
	return fmt.Sprintf("%s_sales_report.%s", t, ext)
}

// DiskFilename nombre seguro para el archivo en disco, p. ej. "inventory-performance_sales_report.pdf".
func DiskFilename(t entity.ReportType, ext string) string {
	return fmt.Sprintf("%s_sales_report.%s", slug.Make(string(t)), ext)
}

// Generate construye el reporte tabular.
func (uc *ReportUseCase) Generate(ctx context.Context, sessionID, reportType string) (*dto.ReportResponse, error) {
	summary, _, err := uc.build(ctx, sessionID, reportType)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(summary.Rows))
	for i := range summary.Rows {
		rows[i] = summary.Cells(i)
	}
	return &dto.ReportResponse{
		Type:            string(summary.Type),
		Title:           fmt.Sprintf("%s Sales Report", summary.Type),
		Columns:         summary.Columns,
		Rows:            rows,
		Recommendations: domainreport.Recommendations,
	}, nil
}

// ExportCSV serializa el reporte como CSV UTF-8 con fila de encabezado y sin índice.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, sessionID, reportType string) (*Export, error) {
	summary, _, err := uc.build(ctx, sessionID, reportType)
	if err != nil {
		return nil, err
	}
	data, err := EncodeCSV(summary)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: Filename(summary.Type, "csv"), ContentType: "text/csv", Data: data}, nil
}

// ExportPDF renderiza el reporte, lo escribe en el directorio de reportes del usuario y lo devuelve.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, sessionID, reportType string) (*Export, error) {
	summary, username, err := uc.build(ctx, sessionID, reportType)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateReportPDF(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}
	path, err := uc.artifacts.WriteReport(ctx, username, DiskFilename(summary.Type, "pdf"), data)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Str("type", string(summary.Type)).Str("path", path).Msg("reporte pdf generado")
	return &Export{Filename: Filename(summary.Type, "pdf"), ContentType: "application/pdf", Data: data, Path: path}, nil
}

// EncodeCSV escribe columnas y filas del reporte en CSV.
func EncodeCSV(summary *entity.ReportSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(summary.Columns); err != nil {
		return nil, err
	}
	for i := range summary.Rows {
		if err := w.Write(summary.Cells(i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (uc *ReportUseCase) build(ctx context.Context, sessionID, reportType string) (*entity.ReportSummary, string, error) {
	t, err := domainreport.ParseType(reportType)
	if err != nil {
		return nil, "", err
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	ds, err := session.Dataset()
	if err != nil {
		return nil, "", err
	}
	summary, err := domainreport.Build(t, ds.Records)
	if err != nil {
		return nil, "", err
	}
	if len(summary.Rows) == 0 {
		uc.log.Debug().Str("type", string(t)).Msg("reporte sin filas")
	}
	return summary, session.CurrentUser, nil
}

