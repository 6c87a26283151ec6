package redis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
)

type sessionDoc struct {
	ID          string      `json:"id"`
	LoggedIn    bool        `json:"logged_in"`
	CurrentUser string      `json:"current_user"`
	Role        string      `json:"role"`
	Data        *datasetDoc `json:"data,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

type datasetDoc struct {
	Records    []recordDoc `json:"records"`
	UploadedAt time.Time   `json:"uploaded_at"`
}

type recordDoc struct {
	ProductSold  string          `json:"product_sold"`
	StockLevel   int64           `json:"stock_level"`
	ReorderLevel int64           `json:"reorder_level"`
	Location     string          `json:"location"`
	Month        string          `json:"month"`
	Season       string          `json:"season"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Profit       decimal.Decimal `json:"profit"`
	QuantitySold int64           `json:"quantity_sold"`
}

func toSessionDoc(s *entity.Session) sessionDoc {
	doc := sessionDoc{
		ID:          s.ID,
		LoggedIn:    s.LoggedIn,
		CurrentUser: s.CurrentUser,
		Role:        s.Role,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
	if s.Data != nil {
		records := make([]recordDoc, len(s.Data.Records))
		for i, r := range s.Data.Records {
			records[i] = recordDoc(r)
		}
		doc.Data = &datasetDoc{Records: records, UploadedAt: s.Data.UploadedAt}
	}
	return doc
}

func (d sessionDoc) toEntity() *entity.Session {
	s := &entity.Session{
		ID:          d.ID,
		LoggedIn:    d.LoggedIn,
		CurrentUser: d.CurrentUser,
		Role:        d.Role,
		CreatedAt:   d.CreatedAt,
		ExpiresAt:   d.ExpiresAt,
	}
	if d.Data != nil {
		records := make([]entity.InventoryRecord, len(d.Data.Records))
		for i, r := range d.Data.Records {
			records[i] = entity.InventoryRecord(r)
		}
		s.Data = &entity.Dataset{Records: records, UploadedAt: d.Data.UploadedAt}
	}
	return s
}
