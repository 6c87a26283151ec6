package repository

import (
	"context"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

// SessionRepository almacén de sesiones. Get y Update devuelven domain.ErrSessionNotFound
// si la sesión no existe o expiró.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Update ejecuta fn sobre la sesión de forma atómica (read-modify-write).
	// Si fn devuelve error no se guarda ningún cambio.
	Update(ctx context.Context, id string, fn func(*entity.Session) error) error
	Delete(ctx context.Context, id string) error
}
