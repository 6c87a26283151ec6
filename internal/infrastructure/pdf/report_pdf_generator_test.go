package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	domainreport "github.com/jhoicas/sales-dashboard/internal/domain/report"
)

func TestGenerateReportPDF_GeneraDocumento(t *testing.T) {
	summary, err := domainreport.Build(entity.ReportInventoryPerformance, []entity.InventoryRecord{
		{ProductSold: "Widget", QuantitySold: 3, TotalRevenue: decimal.NewFromInt(30)},
		{ProductSold: "Gadget", QuantitySold: 1, TotalRevenue: decimal.NewFromInt(99)},
	})
	require.NoError(t, err)

	data, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), summary)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe iniciar con la firma PDF")
}

func TestGenerateReportPDF_ReporteVacio(t *testing.T) {
	summary, err := domainreport.Build(entity.ReportMonthly, nil)
	require.NoError(t, err)

	data, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), summary)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
