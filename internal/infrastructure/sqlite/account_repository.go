package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepository)(nil)

// copyBatchSize filas por INSERT al reemplazar un dataset.
const copyBatchSize = 500

// AccountRepository cuentas y datasets sobre gorm/SQLite.
type AccountRepository struct {
	database *gorm.DB
	now      func() time.Time
}

// NewAccountRepository construye el repositorio.
func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database, now: time.Now}
}

func (repo *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&accountModel{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("count accounts: %w", err)
		}
		if count > 0 {
			return domain.ErrUsernameTaken
		}
		err := tx.Create(&accountModel{
			Username:     account.Username,
			PasswordHash: account.PasswordHash,
			Role:         account.Role,
			CreatedAt:    account.CreatedAt,
			UpdatedAt:    account.UpdatedAt,
		}).Error
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrUsernameTaken
			}
			return fmt.Errorf("insert account: %w", err)
		}
		return nil
	})
}

func (repo *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	db := repo.database.WithContext(ctx)
	var m accountModel
	if err := db.Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a := &entity.Account{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if !m.HasDataset {
		return a, nil
	}

	var rows []recordModel
	if err := db.Where("username = ?", username).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	records := make([]entity.InventoryRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toEntity()
	}
	a.Dataset = &entity.Dataset{Records: records}
	if m.DatasetUploadedAt != nil {
		a.Dataset.UploadedAt = *m.DatasetUploadedAt
	}
	return a, nil
}

func (repo *AccountRepository) SaveDataset(ctx context.Context, username string, dataset *entity.Dataset) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var uploadedAt *time.Time
		if dataset != nil && !dataset.UploadedAt.IsZero() {
			t := dataset.UploadedAt
			uploadedAt = &t
		}
		res := tx.Model(&accountModel{}).Where("username = ?", username).Updates(map[string]any{
			"has_dataset":         dataset != nil,
			"dataset_uploaded_at": uploadedAt,
			"updated_at":          repo.now(),
		})
		if res.Error != nil {
			return fmt.Errorf("update account: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		if err := tx.Where("username = ?", username).Delete(&recordModel{}).Error; err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		if dataset.Len() == 0 {
			return nil
		}
		rows := make([]recordModel, len(dataset.Records))
		for i, r := range dataset.Records {
			rows[i] = toRecordModel(username, i, r)
		}
		if err := tx.CreateInBatches(rows, copyBatchSize).Error; err != nil {
			return fmt.Errorf("insert records: %w", err)
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
