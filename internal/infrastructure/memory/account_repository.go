package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
)

// AccountRepository almacén de cuentas en proceso. Todo lo que entra y sale se copia.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
	now      func() time.Time
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository crea un almacén vacío.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*entity.Account), now: time.Now}
}

func (r *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.accounts[account.Username] = cloneAccount(account)
	return nil
}

func (r *AccountRepository) GetByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[username]
	if !ok {
		return nil, nil
	}
	return cloneAccount(a), nil
}

func (r *AccountRepository) SaveDataset(_ context.Context, username string, dataset *entity.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	a.Dataset = dataset.Clone()
	a.UpdatedAt = r.now()
	return nil
}

func cloneAccount(a *entity.Account) *entity.Account {
	c := *a
	c.Dataset = a.Dataset.Clone()
	return &c
}
