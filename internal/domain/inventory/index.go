package inventory

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// Index posiciones de fila por producto y por ubicación. Los filtros se combinan
// intersectando bitmaps; la iteración ascendente conserva el orden original del dataset.
type Index struct {
	size       int
	byProduct  map[string]*roaring.Bitmap
	byLocation map[string]*roaring.Bitmap
	products   []string
	locations  []string
}

// NewIndex construye el índice en una sola pasada.
func NewIndex(ds *entity.Dataset) *Index {
	ix := &Index{
		size:       ds.Len(),
		byProduct:  make(map[string]*roaring.Bitmap),
		byLocation: make(map[string]*roaring.Bitmap),
	}
	for i := 0; i < ix.size; i++ {
		r := ds.Records[i]
		ix.products = addTo(ix.byProduct, ix.products, r.ProductSold, uint32(i))
		ix.locations = addTo(ix.byLocation, ix.locations, r.Location, uint32(i))
	}
	return ix
}

func addTo(m map[string]*roaring.Bitmap, order []string, key string, pos uint32) []string {
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
		order = append(order, key)
	}
	bm.Add(pos)
	return order
}

// Products nombres distintos en orden de primera aparición.
func (ix *Index) Products() []string { return append([]string(nil), ix.products...) }

// Locations ubicaciones distintas en orden de primera aparición.
func (ix *Index) Locations() []string { return append([]string(nil), ix.locations...) }

// Rows filas que cumplen producto y ubicación. Cadena vacía = sin filtro.
// Devuelve un bitmap nuevo; los del índice no se modifican.
func (ix *Index) Rows(product, location string) *roaring.Bitmap {
	rows := roaring.New()
	rows.AddRange(0, uint64(ix.size))
	if product != "" {
		bm, ok := ix.byProduct[product]
		if !ok {
			return roaring.New()
		}
		rows.And(bm)
	}
	if location != "" {
		bm, ok := ix.byLocation[location]
		if !ok {
			return roaring.New()
		}
		rows.And(bm)
	}
	return rows
}
