package dto

import "github.com/shopspring/decimal"

// RecordDTO fila del dataset tal como se muestra en tablas.
type RecordDTO struct {
	ProductSold  string          `json:"product_sold"`
	StockLevel   int64           `json:"stock_levels"`
	ReorderLevel int64           `json:"reorder_levels"`
	Location     string          `json:"location"`
	Month        string          `json:"month"`
	Season       string          `json:"season"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Profit       decimal.Decimal `json:"profit"`
	QuantitySold int64           `json:"quantity_sold"`
}

// UploadResponse resultado de cargar una hoja de cálculo.
type UploadResponse struct {
	Filename string      `json:"filename"`
	Rows     int         `json:"rows"`
	Records  []RecordDTO `json:"records"`
}

// InventoryFilterRequest parámetros de GET /api/inventory. "All" o vacío = sin filtro.
type InventoryFilterRequest struct {
	Product      string `query:"product"`
	Location     string `query:"location"`
	BelowReorder bool   `query:"below_reorder"`
}

// InventoryViewResponse vista de monitoreo: tabla filtrada, alertas y opciones de los selectores.
type InventoryViewResponse struct {
	Items         []RecordDTO `json:"items"`
	ReorderAlerts []RecordDTO `json:"reorder_alerts,omitempty"` // solo con below_reorder=true
	AllStocked    bool        `json:"all_stocked"`              // below_reorder=true y sin alertas
	Products      []string    `json:"products"`
	Locations     []string    `json:"locations"`
}

// UpdateStockRequest nuevo nivel de stock para todas las filas del producto.
type UpdateStockRequest struct {
	Product    string `json:"product" form:"product"`
	StockLevel *int64 `json:"stock_level" form:"stock_level"`
}

// UpdateStockResponse resultado de la actualización.
type UpdateStockResponse struct {
	Product     string `json:"product"`
	StockLevel  int64  `json:"stock_level"`
	RowsUpdated int    `json:"rows_updated"`
}

// ReorderLevelRequest umbral global de reorden.
type ReorderLevelRequest struct {
	Level int64 `json:"level" form:"level"`
}

// ReorderLevelResponse resultado del cambio de umbral.
type ReorderLevelResponse struct {
	Level        int64  `json:"level"`
	RowsUpdated  int    `json:"rows_updated"`
	SnapshotPath string `json:"snapshot_path"`
}

// AddProductRequest alta manual de producto.
type AddProductRequest struct {
	Name     string          `json:"name" form:"name"`
	Quantity int64           `json:"quantity" form:"quantity"`
	Price    decimal.Decimal `json:"price" form:"price"`
}

// AddProductResponse fila agregada.
type AddProductResponse struct {
	Record       RecordDTO `json:"record"`
	Rows         int       `json:"rows"`
	SnapshotPath string    `json:"snapshot_path"`
}

// CategoriesRequest categorías separadas por coma.
type CategoriesRequest struct {
	Categories string `json:"categories" form:"categories"`
}

// CategoriesResponse categorías guardadas.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Path       string   `json:"path"`
}

// SaveDatasetResponse resultado de persistir la copia de trabajo.
type SaveDatasetResponse struct {
	Rows         int    `json:"rows"`
	SnapshotPath string `json:"snapshot_path"`
}
