package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

var recordColumns = []string{
	"username", "position", "product_sold", "stock_level", "reorder_level",
	"location", "month", "season", "total_revenue", "profit", "quantity_sold",
}

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
// El dataset vive en inventory_records, una fila por registro con su posición original.
type AccountRepo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool, now: time.Now}
}

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		account.Username, account.PasswordHash, account.Role, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return mapAccountError("insert account", err)
	}
	return nil
}

// GetByUsername obtiene la cuenta con su dataset guardado.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	query := `
		SELECT username, password_hash, role, has_dataset, dataset_uploaded_at, created_at, updated_at
		FROM accounts WHERE username = $1`
	var (
		a          entity.Account
		hasDataset bool
		uploadedAt *time.Time
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&a.Username, &a.PasswordHash, &a.Role, &hasDataset, &uploadedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	if !hasDataset {
		return &a, nil
	}

	records, err := r.loadRecords(ctx, username)
	if err != nil {
		return nil, err
	}
	a.Dataset = &entity.Dataset{Records: records}
	if uploadedAt != nil {
		a.Dataset.UploadedAt = *uploadedAt
	}
	return &a, nil
}

func (r *AccountRepo) loadRecords(ctx context.Context, username string) ([]entity.InventoryRecord, error) {
	query := `
		SELECT product_sold, stock_level, reorder_level, location, month, season,
		       total_revenue, profit, quantity_sold
		FROM inventory_records WHERE username = $1 ORDER BY position`
	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	out := make([]entity.InventoryRecord, 0)
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(
			&rec.ProductSold, &rec.StockLevel, &rec.ReorderLevel, &rec.Location, &rec.Month, &rec.Season,
			&rec.TotalRevenue, &rec.Profit, &rec.QuantitySold,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SaveDataset reemplaza el dataset de la cuenta dentro de una transacción (DELETE + COPY).
func (r *AccountRepo) SaveDataset(ctx context.Context, username string, dataset *entity.Dataset) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		var uploadedAt *time.Time
		if dataset != nil && !dataset.UploadedAt.IsZero() {
			uploadedAt = &dataset.UploadedAt
		}
		tag, err := tx.Exec(ctx, `
			UPDATE accounts SET has_dataset = $2, dataset_uploaded_at = $3, updated_at = $4
			WHERE username = $1`,
			username, dataset != nil, uploadedAt, r.now(),
		)
		if err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrUserNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM inventory_records WHERE username = $1`, username); err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		if dataset.Len() == 0 {
			return nil
		}

		records := dataset.Records
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"inventory_records"}, recordColumns,
			pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
				rec := records[i]
				return []any{
					username, i, rec.ProductSold, rec.StockLevel, rec.ReorderLevel,
					rec.Location, rec.Month, rec.Season, rec.TotalRevenue, rec.Profit, rec.QuantitySold,
				}, nil
			}),
		)
		if err != nil {
			return mapAccountError("copy records", err)
		}
		return nil
	})
}
