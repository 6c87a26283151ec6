package entity

import (
	"time"

	"github.com/jhoicas/sales-dashboard/internal/domain"
)

// Session estado de trabajo de un usuario autenticado.
// Data es la copia de trabajo: puede divergir de la guardada en Account hasta que se persiste.
type Session struct {
	ID          string
	LoggedIn    bool
	CurrentUser string
	Role        string
	Data        *Dataset
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Dataset devuelve la copia de trabajo. Solo es accesible con sesión iniciada.
func (s *Session) Dataset() (*Dataset, error) {
	if s == nil || !s.LoggedIn {
		return nil, domain.ErrUnauthorized
	}
	if s.Data == nil {
		return nil, domain.ErrDatasetNotReady
	}
	return s.Data, nil
}

// Expired indica si la sesión superó su vida útil.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Reset borra los campos de la sesión (logout).
func (s *Session) Reset() {
	s.LoggedIn = false
	s.CurrentUser = ""
	s.Role = ""
	s.Data = nil
}

// Clone copia profunda de la sesión.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Data = s.Data.Clone()
	return &c
}
