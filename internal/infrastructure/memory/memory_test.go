package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

func sampleDataset() *entity.Dataset {
	return &entity.Dataset{Records: []entity.InventoryRecord{
		{ProductSold: "ProductA", StockLevel: 5, ReorderLevel: 10, Location: "North", TotalRevenue: decimal.NewFromInt(100)},
	}}
}

func TestAccountRepository_CreateDuplicado(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "ana", Role: entity.RoleManager}))
	err := repo.Create(ctx, &entity.Account{Username: "ana", Role: entity.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	got, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, got.Role)
}

func TestAccountRepository_GetInexistenteDevuelveNil(t *testing.T) {
	repo := NewAccountRepository()
	got, err := repo.GetByUsername(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountRepository_SaveDatasetCopia(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "ana"}))

	ds := sampleDataset()
	require.NoError(t, repo.SaveDataset(ctx, "ana", ds))
	ds.Records[0].StockLevel = 999

	got, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Equal(t, 1, got.Dataset.Len())
	assert.Equal(t, int64(5), got.Dataset.Records[0].StockLevel)

	got.Dataset.Records[0].StockLevel = 1
	again, _ := repo.GetByUsername(ctx, "ana")
	assert.Equal(t, int64(5), again.Dataset.Records[0].StockLevel)

	assert.ErrorIs(t, repo.SaveDataset(ctx, "nadie", ds), domain.ErrUserNotFound)
}

func TestSessionRepository_UpdateErrorNoGuarda(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Session{ID: "s1", LoggedIn: true, Data: sampleDataset()}))

	boom := errors.New("boom")
	err := repo.Update(ctx, "s1", func(s *entity.Session) error {
		s.Data.Records[0].StockLevel = 0
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Data.Records[0].StockLevel)
}

func TestSessionRepository_Expirada(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }
	require.NoError(t, repo.Create(ctx, &entity.Session{ID: "s1", LoggedIn: true, ExpiresAt: base.Add(time.Minute)}))

	_, err := repo.Get(ctx, "s1")
	require.NoError(t, err)

	repo.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "s1", func(*entity.Session) error { return nil }), domain.ErrSessionNotFound)
}

func TestSessionRepository_DeleteInexistente(t *testing.T) {
	repo := NewSessionRepository()
	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), domain.ErrSessionNotFound)
}

// Las sesiones de distintos usuarios no comparten estado y las actualizaciones concurrentes no se pierden.
func TestSessionRepository_UpdateConcurrente(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Session{ID: fmt.Sprintf("s%d", i), LoggedIn: true, Data: sampleDataset()}))
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		for j := 0; j < 50; j++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				_ = repo.Update(ctx, id, func(s *entity.Session) error {
					s.Data.Records[0].StockLevel++
					return nil
				})
			}(fmt.Sprintf("s%d", i))
		}
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		got, err := repo.Get(ctx, fmt.Sprintf("s%d", i))
		require.NoError(t, err)
		assert.Equal(t, int64(55), got.Data.Records[0].StockLevel)
	}
}
