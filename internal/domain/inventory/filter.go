package inventory

import "github.com/jhoicas/sales-dashboard/internal/domain/entity"

// Criteria filtros de la vista de inventario. Cada predicado es independiente (AND).
type Criteria struct {
	Product      string // vacío = todos
	Location     string // vacío = todas
	BelowReorder bool
}

// Filter aplica producto y ubicación; BelowReorder se evalúa sobre ese subconjunto ya filtrado.
func Filter(ds *entity.Dataset, c Criteria) []entity.InventoryRecord {
	return FilterIndexed(ds, NewIndex(ds), c)
}

// FilterIndexed igual que Filter reutilizando un índice ya construido sobre ds.
func FilterIndexed(ds *entity.Dataset, ix *Index, c Criteria) []entity.InventoryRecord {
	rows := ix.Rows(c.Product, c.Location)
	out := make([]entity.InventoryRecord, 0, rows.GetCardinality())
	it := rows.Iterator()
	for it.HasNext() {
		r := ds.Records[it.Next()]
		if c.BelowReorder && !r.NeedsReorder() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ReorderAlerts filas de view con stock <= nivel de reorden.
func ReorderAlerts(view []entity.InventoryRecord) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0)
	for _, r := range view {
		if r.NeedsReorder() {
			out = append(out, r)
		}
	}
	return out
}
