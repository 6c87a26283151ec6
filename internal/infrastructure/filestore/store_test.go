package filestore

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

func TestWriteSnapshot_CSVConEncabezado(t *testing.T) {
	root := t.TempDir()
	s := New(filepath.Join(root, "data"), filepath.Join(root, "reports"))
	ds := &entity.Dataset{Records: []entity.InventoryRecord{
		{ProductSold: "Widget, XL", StockLevel: 3, ReorderLevel: 5, Location: "North", Month: "January",
			Season: "Winter", TotalRevenue: decimal.RequireFromString("25.5"), Profit: decimal.NewFromInt(4), QuantitySold: 10},
	}}

	path, err := s.WriteSnapshot(context.Background(), "Ana María", ds)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "ana-maria", SnapshotFile), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.RecordColumns, rows[0])
	assert.Equal(t, []string{"Widget, XL", "3", "5", "North", "January", "Winter", "25.5", "4", "10"}, rows[1])
}

func TestWriteCategories_TextoCrudo(t *testing.T) {
	root := t.TempDir()
	s := New(root, root)

	path, err := s.WriteCategories(context.Background(), "bob", "Toys, Food")
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Toys, Food", string(raw))

	// sobrescribe
	_, err = s.WriteCategories(context.Background(), "bob", "Tools")
	require.NoError(t, err)
	raw, _ = os.ReadFile(path)
	assert.Equal(t, "Tools", string(raw))
}

func TestWriteReport_NombreSinRutas(t *testing.T) {
	root := t.TempDir()
	s := New(root, filepath.Join(root, "reports"))

	path, err := s.WriteReport(context.Background(), "bob", "../../monthly_sales_report.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "reports", "bob", "monthly_sales_report.pdf"), path)
}

func TestWrite_RutaNoEscribibleEsErrIO(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	s := New(blocker, blocker)

	_, err := s.WriteReport(context.Background(), "bob", "r.pdf", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrIO)
	_, err = s.WriteSnapshot(context.Background(), "bob", &entity.Dataset{})
	assert.ErrorIs(t, err, domain.ErrIO)
}
