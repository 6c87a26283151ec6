// Package filestore escribe los artefactos de usuario en disco: categorías, snapshot CSV
// del dataset y reportes PDF. Cada usuario tiene su propio subdirectorio.
package filestore

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gosimple/slug"

	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

const (
	CategoriesFile = "categories.txt"
	SnapshotFile   = "inventory_data.csv"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store guarda en dataDir/<usuario>/ y reportsDir/<usuario>/.
type Store struct {
	dataDir    string
	reportsDir string
}

// New construye el store. Los directorios se crean al escribir.
func New(dataDir, reportsDir string) *Store {
	return &Store{dataDir: dataDir, reportsDir: reportsDir}
}

func (s *Store) WriteCategories(_ context.Context, username, categories string) (string, error) {
	return writeFile(filepath.Join(s.dataDir, userDir(username), CategoriesFile), []byte(categories))
}

func (s *Store) WriteSnapshot(_ context.Context, username string, dataset *entity.Dataset) (string, error) {
	data, err := EncodeDataset(dataset)
	if err != nil {
		return "", fmt.Errorf("%w: serializar snapshot: %v", domain.ErrIO, err)
	}
	return writeFile(filepath.Join(s.dataDir, userDir(username), SnapshotFile), data)
}

func (s *Store) WriteReport(_ context.Context, username, filename string, data []byte) (string, error) {
	return writeFile(filepath.Join(s.reportsDir, userDir(username), filepath.Base(filename)), data)
}

// EncodeDataset serializa el dataset como CSV con las nueve columnas y sin índice.
func EncodeDataset(ds *entity.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(entity.RecordColumns); err != nil {
		return nil, err
	}
	if ds != nil {
		for _, r := range ds.Records {
			err := w.Write([]string{
				r.ProductSold,
				strconv.FormatInt(r.StockLevel, 10),
				strconv.FormatInt(r.ReorderLevel, 10),
				r.Location,
				r.Month,
				r.Season,
				r.TotalRevenue.String(),
				r.Profit.String(),
				strconv.FormatInt(r.QuantitySold, 10),
			})
			if err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// userDir nombre de directorio seguro para el usuario ("Ana María" -> "ana-maria").
func userDir(username string) string {
	if d := slug.Make(username); d != "" {
		return d
	}
	return "_"
}

// writeFile escribe en un temporal y renombra, así un lector nunca ve un archivo a medias.
func writeFile(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: crear directorio %s: %v", domain.ErrIO, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: crear %s: %v", domain.ErrIO, path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: escribir %s: %v", domain.ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: cerrar %s: %v", domain.ErrIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: renombrar %s: %v", domain.ErrIO, path, err)
	}
	return path, nil
}
