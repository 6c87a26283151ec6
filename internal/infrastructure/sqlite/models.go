package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

type accountModel struct {
	Username          string `gorm:"primaryKey"`
	PasswordHash      string `gorm:"not null"`
	Role              string `gorm:"not null"`
	HasDataset        bool   `gorm:"not null;default:false"`
	DatasetUploadedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (accountModel) TableName() string { return "accounts" }

type recordModel struct {
	Username     string          `gorm:"primaryKey"`
	Position     int             `gorm:"primaryKey;autoIncrement:false"`
	ProductSold  string          `gorm:"not null"`
	StockLevel   int64           `gorm:"not null"`
	ReorderLevel int64           `gorm:"not null"`
	Location     string          `gorm:"not null"`
	Month        string          `gorm:"not null"`
	Season       string          `gorm:"not null"`
	TotalRevenue decimal.Decimal `gorm:"type:text;not null"`
	Profit       decimal.Decimal `gorm:"type:text;not null"`
	QuantitySold int64           `gorm:"not null"`
}

func (recordModel) TableName() string { return "inventory_records" }

func toRecordModel(username string, pos int, r entity.InventoryRecord) recordModel {
	return recordModel{
		Username:     username,
		Position:     pos,
		ProductSold:  r.ProductSold,
		StockLevel:   r.StockLevel,
		ReorderLevel: r.ReorderLevel,
		Location:     r.Location,
		Month:        r.Month,
		Season:       r.Season,
		TotalRevenue: r.TotalRevenue,
		Profit:       r.Profit,
		QuantitySold: r.QuantitySold,
	}
}

func (m recordModel) toEntity() entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductSold:  m.ProductSold,
		StockLevel:   m.StockLevel,
		ReorderLevel: m.ReorderLevel,
		Location:     m.Location,
		Month:        m.Month,
		Season:       m.Season,
		TotalRevenue: m.TotalRevenue,
		Profit:       m.Profit,
		QuantitySold: m.QuantitySold,
	}
}
