package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
)

// SessionRepository sesiones en proceso. Update mantiene el lock de escritura mientras
// corre fn, así dos peticiones de la misma sesión no se pisan.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	now      func() time.Time
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository crea un almacén vacío.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*entity.Session), now: time.Now}
}

func (r *SessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	var out *entity.Session
	if ok {
		out = s.Clone()
	}
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if out.Expired(r.now()) {
		r.evict(id)
		return nil, domain.ErrSessionNotFound
	}
	return out, nil
}

func (r *SessionRepository) Update(_ context.Context, id string, fn func(*entity.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Expired(r.now()) {
		delete(r.sessions, id)
		return domain.ErrSessionNotFound
	}
	work := s.Clone()
	if err := fn(work); err != nil {
		return err
	}
	r.sessions[id] = work
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepository) evict(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
