package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres de columna del archivo de carga (primera fila de la hoja).
const (
	ColProductSold   = "Product Sold"
	ColStockLevels   = "Stock levels"
	ColReorderLevels = "Reorder Levels"
	ColLocation      = "Location"
	ColMonth         = "Month"
	ColSeason        = "Season"
	ColTotalRevenue  = "Total Revenue"
	ColProfit        = "Profit"
	ColQuantitySold  = "quantity sold"
	ColYear          = "Year"
)

// RecordColumns orden canónico de columnas para snapshots y cargas.
var RecordColumns = []string{
	ColProductSold,
	ColStockLevels,
	ColReorderLevels,
	ColLocation,
	ColMonth,
	ColSeason,
	ColTotalRevenue,
	ColProfit,
	ColQuantitySold,
}

// DefaultLocation ubicación asignada a productos dados de alta manualmente.
const DefaultLocation = "Default Location"

// InventoryRecord una fila del dataset. El nombre de producto puede repetirse entre ubicaciones.
type InventoryRecord struct {
	ProductSold  string
	StockLevel   int64
	ReorderLevel int64
	Location     string
	Month        string // valor crudo tal como llegó en la hoja
	Season       string
	TotalRevenue decimal.Decimal
	Profit       decimal.Decimal
	QuantitySold int64
}

// NeedsReorder condición de alerta: stock <= nivel de reorden.
func (r InventoryRecord) NeedsReorder() bool {
	return r.StockLevel <= r.ReorderLevel
}

// Dataset copia tabular del usuario.
type Dataset struct {
	Records    []InventoryRecord
	UploadedAt time.Time
}

// Len número de filas; tolera receptor nil.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Clone devuelve una copia independiente (InventoryRecord no contiene punteros).
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	records := make([]InventoryRecord, len(d.Records))
	copy(records, d.Records)
	return &Dataset{Records: records, UploadedAt: d.UploadedAt}
}
