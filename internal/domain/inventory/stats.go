package inventory

import "github.com/jhoicas/sales-dashboard/internal/domain/entity"

// DistinctProducts cantidad de nombres de producto distintos.
func DistinctProducts(ds *entity.Dataset) int {
	seen := make(map[string]struct{}, ds.Len())
	for _, r := range ds.Records {
		seen[r.ProductSold] = struct{}{}
	}
	return len(seen)
}

// PendingReorders filas con stock <= nivel de reorden.
func PendingReorders(ds *entity.Dataset) int {
	n := 0
	for _, r := range ds.Records {
		if r.NeedsReorder() {
			n++
		}
	}
	return n
}

// LowStockAlert heurística global del dashboard: el menor stock está por debajo del menor
// nivel de reorden. No compara fila a fila.
func LowStockAlert(ds *entity.Dataset) bool {
	if ds.Len() == 0 {
		return false
	}
	minStock, minReorder := ds.Records[0].StockLevel, ds.Records[0].ReorderLevel
	for _, r := range ds.Records[1:] {
		minStock = min(minStock, r.StockLevel)
		minReorder = min(minReorder, r.ReorderLevel)
	}
	return minStock < minReorder
}
