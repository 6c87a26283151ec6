package repository

import (
	"context"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// AccountRepository puerto de persistencia para cuentas y su dataset (DIP).
// Las implementaciones deben ser seguras para uso concurrente.
type AccountRepository interface {
	// Create persiste una cuenta nueva; devuelve domain.ErrUsernameTaken si ya existe.
	Create(ctx context.Context, account *entity.Account) error
	// GetByUsername devuelve (nil, nil) si la cuenta no existe. Incluye el dataset guardado.
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	// SaveDataset reemplaza por completo el dataset de la cuenta.
	// Devuelve domain.ErrUserNotFound si la cuenta no existe.
	SaveDataset(ctx context.Context, username string, dataset *entity.Dataset) error
}
