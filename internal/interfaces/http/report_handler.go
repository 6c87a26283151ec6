package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard/internal/application/report"
)

// ReportHandler reportes tabulares y sus descargas CSV/PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get GET /api/reports/:type (monthly, seasonal, yearly, inventory-performance)
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context(), GetSessionID(c), reportType(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CSV GET /api/reports/:type/csv
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	exp, err := h.uc.ExportCSV(c.Context(), GetSessionID(c), reportType(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, exp)
}

// PDF GET /api/reports/:type/pdf
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	exp, err := h.uc.ExportPDF(c.Context(), GetSessionID(c), reportType(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, exp)
}

func reportType(c *fiber.Ctx) string {
	raw := c.Params("type")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func sendExport(c *fiber.Ctx, exp *report.Export) error {
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exp.Filename))
	c.Set(fiber.HeaderContentType, exp.ContentType)
	return c.Send(exp.Data)
}
