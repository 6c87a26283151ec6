package dto

// ReportResponse reporte tabular listo para mostrar. Rows sigue el orden de Columns.
type ReportResponse struct {
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Columns         []string   `json:"columns"`
	Rows            [][]string `json:"rows"`
	Recommendations []string   `json:"recommendations"`
}
