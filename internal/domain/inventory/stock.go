package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// MinReorderLevel mínimo aceptado para el umbral global de reorden.
const MinReorderLevel = 1

// UpdateStock fija el stock de TODAS las filas con ese nombre de producto (todas las ubicaciones).
// Muta ds en sitio y devuelve cuántas filas cambiaron.
func UpdateStock(ds *entity.Dataset, product string, level int64) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrValidation)
	}
	n := 0
	for i := range ds.Records {
		if ds.Records[i].ProductSold == product {
			ds.Records[i].StockLevel = level
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: producto %q no existe en el dataset", domain.ErrValidation, product)
	}
	return n, nil
}

// SetGlobalReorderLevel sobrescribe el nivel de reorden de cada fila.
func SetGlobalReorderLevel(ds *entity.Dataset, level int64) error {
	if level < MinReorderLevel {
		return fmt.Errorf("%w: el nivel de reorden debe ser al menos %d", domain.ErrValidation, MinReorderLevel)
	}
	for i := range ds.Records {
		ds.Records[i].ReorderLevel = level
	}
	return nil
}

// AddProduct agrega una fila con Total Revenue = quantity × price en la ubicación por defecto.
// Stock y reorden quedan en cero: el producto aparece como pendiente de reposición.
func AddProduct(ds *entity.Dataset, name string, quantity int64, price decimal.Decimal) (entity.InventoryRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" || quantity <= 0 || price.IsNegative() {
		return entity.InventoryRecord{}, fmt.Errorf("%w: nombre, cantidad (> 0) y precio (>= 0) son requeridos", domain.ErrValidation)
	}
	rec := entity.InventoryRecord{
		ProductSold:  name,
		QuantitySold: quantity,
		TotalRevenue: price.Mul(decimal.NewFromInt(quantity)),
		Location:     entity.DefaultLocation,
	}
	ds.Records = append(ds.Records, rec)
	return rec, nil
}
