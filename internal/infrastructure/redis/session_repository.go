// Package redis guarda sesiones en Redis para que varias réplicas del API compartan estado.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/pkg/config"
)

const (
	keyPrefix = "session:"
	// maxUpdateRetries reintentos de Update cuando otra petición modificó la sesión entre WATCH y EXEC.
	maxUpdateRetries = 10
)

var _ repository.SessionRepository = (*SessionRepository)(nil)

// SessionRepository sesiones serializadas en JSON, una clave por sesión con TTL = expiración.
type SessionRepository struct {
	rdb *goredis.Client
	now func() time.Time
}

// NewClient conecta con Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewSessionRepository construye el repositorio sobre un cliente ya conectado.
func NewSessionRepository(rdb *goredis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb, now: time.Now}
}

func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	payload, ttl, err := r.encode(session)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	return r.decode(raw)
}

// Update lee, aplica fn y escribe dentro de WATCH/MULTI. Si la clave cambia en medio
// la transacción se descarta y se reintenta con el valor nuevo.
func (r *SessionRepository) Update(ctx context.Context, id string, fn func(*entity.Session) error) error {
	key := keyPrefix + id
	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return domain.ErrSessionNotFound
			}
			return fmt.Errorf("leer sesión: %w", err)
		}
		session, err := r.decode(raw)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		payload, ttl, err := r.encode(session)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("actualizar sesión %s: demasiados conflictos", id)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) encode(s *entity.Session) ([]byte, time.Duration, error) {
	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = s.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return nil, 0, domain.ErrSessionNotFound
		}
	}
	payload, err := json.Marshal(toSessionDoc(s))
	if err != nil {
		return nil, 0, fmt.Errorf("serializar sesión: %w", err)
	}
	return payload, ttl, nil
}

func (r *SessionRepository) decode(raw []byte) (*entity.Session, error) {
	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("deserializar sesión: %w", err)
	}
	s := doc.toEntity()
	if s.Expired(r.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}
