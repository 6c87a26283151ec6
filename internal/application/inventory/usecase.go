package inventory

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/application/ports"
	"github.com/jhoicas/sales-dashboard/internal/domain"
	"github.com/jhoicas/sales-dashboard/internal/domain/entity"
	domaininv "github.com/jhoicas/sales-dashboard/internal/domain/inventory"
	"github.com/jhoicas/sales-dashboard/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard/pkg/logger"
)

// SelectorAll valor del selector que equivale a "sin filtro".
const SelectorAll = "All"

// InventoryUseCase operaciones sobre la copia de trabajo del dataset de la sesión.
type InventoryUseCase struct {
	sessions  repository.SessionRepository
	accounts  repository.AccountRepository
	parser    ports.DatasetParser
	artifacts ports.ArtifactStore
	log       *logger.Logger
	now       func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	sessions repository.SessionRepository,
	accounts repository.AccountRepository,
	parser ports.DatasetParser,
	artifacts ports.ArtifactStore,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		sessions:  sessions,
		accounts:  accounts,
		parser:    parser,
		artifacts: artifacts,
		log:       log.Component("inventory"),
		now:       time.Now,
	}
}

// Upload parsea el archivo, lo guarda en la cuenta y luego reemplaza el dataset de la sesión.
// Si la cuenta no se puede actualizar la sesión conserva su dataset anterior.
func (uc *InventoryUseCase) Upload(ctx context.Context, sessionID, filename string, r io.Reader) (*dto.UploadResponse, error) {
	ds, err := uc.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	ds.UploadedAt = uc.now()

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.LoggedIn {
		return nil, domain.ErrUnauthorized
	}
	username := session.CurrentUser
	if err := uc.accounts.SaveDataset(ctx, username, ds); err != nil {
		return nil, fmt.Errorf("guardar dataset: %w", err)
	}

	err = uc.sessions.Update(ctx, sessionID, func(s *entity.Session) error {
		if !s.LoggedIn || s.CurrentUser != username {
			return domain.ErrUnauthorized
		}
		s.Data = ds.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", username).Str("filename", filename).Int("rows", ds.Len()).Msg("dataset cargado")
	return &dto.UploadResponse{Filename: filename, Rows: ds.Len(), Records: toRecordDTOs(ds.Records)}, nil
}

// Filter devuelve la vista de monitoreo. Las alertas de reorden se calculan sobre el subconjunto
// ya filtrado por producto y ubicación.
func (uc *InventoryUseCase) Filter(ctx context.Context, sessionID string, in dto.InventoryFilterRequest) (*dto.InventoryViewResponse, error) {
	ds, err := uc.dataset(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ix := domaininv.NewIndex(ds)
	items := domaininv.FilterIndexed(ds, ix, domaininv.Criteria{
		Product:  normalizeSelector(in.Product),
		Location: normalizeSelector(in.Location),
	})
	out := &dto.InventoryViewResponse{
		Items:     toRecordDTOs(items),
		Products:  ix.Products(),
		Locations: ix.Locations(),
	}
	if in.BelowReorder {
		alerts := domaininv.ReorderAlerts(items)
		out.ReorderAlerts = toRecordDTOs(alerts)
		out.AllStocked = len(alerts) == 0
	}
	return out, nil
}

// UpdateStock cambia el stock del producto en todas sus ubicaciones. Solo afecta la sesión.
func (uc *InventoryUseCase) UpdateStock(ctx context.Context, sessionID string, in dto.UpdateStockRequest) (*dto.UpdateStockResponse, error) {
	product := strings.TrimSpace(in.Product)
	if product == "" || in.StockLevel == nil {
		return nil, fmt.Errorf("%w: product y stock_level son requeridos", domain.ErrValidation)
	}
	var n int
	err := uc.sessions.Update(ctx, sessionID, func(s *entity.Session) error {
		ds, err := s.Dataset()
		if err != nil {
			return err
		}
		n, err = domaininv.UpdateStock(ds, product, *in.StockLevel)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("product", product).Int64("stock", *in.StockLevel).Int("rows", n).Msg("stock actualizado")
	return &dto.UpdateStockResponse{Product: product, StockLevel: *in.StockLevel, RowsUpdated: n}, nil
}

// SetGlobalReorderLevel sobrescribe el umbral de todas las filas y escribe el snapshot CSV.
// Si el snapshot falla la sesión queda sin cambios.
func (uc *InventoryUseCase) SetGlobalReorderLevel(ctx context.Context, sessionID string, level int64) (*dto.ReorderLevelResponse, error) {
	var rows int
	var path string
	err := uc.sessions.Update(ctx, sessionID, func(s *entity.Session) error {
		ds, err := s.Dataset()
		if err != nil {
			return err
		}
		if err := domaininv.SetGlobalReorderLevel(ds, level); err != nil {
			return err
		}
		rows = ds.Len()
		path, err = uc.artifacts.WriteSnapshot(ctx, s.CurrentUser, ds)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("level", level).Str("snapshot", path).Msg("nivel de reorden global actualizado")
	return &dto.ReorderLevelResponse{Level: level, RowsUpdated: rows, SnapshotPath: path}, nil
}

// AddProduct agrega una fila manual al dataset de la sesión y escribe el snapshot CSV.
func (uc *InventoryUseCase) AddProduct(ctx context.Context, sessionID string, in dto.AddProductRequest) (*dto.AddProductResponse, error) {
	var (
		rec  entity.InventoryRecord
		rows int
		path string
	)
	err := uc.sessions.Update(ctx, sessionID, func(s *entity.Session) error {
		ds, err := s.Dataset()
		if err != nil {
			return err
		}
		rec, err = domaininv.AddProduct(ds, in.Name, in.Quantity, in.Price)
		if err != nil {
			return err
		}
		rows = ds.Len()
		path, err = uc.artifacts.WriteSnapshot(ctx, s.CurrentUser, ds)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product", rec.ProductSold).Int64("quantity", rec.QuantitySold).Msg("producto agregado")
	return &dto.AddProductResponse{Record: toRecordDTO(rec), Rows: rows, SnapshotPath: path}, nil
}

// SaveCategories guarda el texto crudo de categorías y devuelve la lista separada por comas.
func (uc *InventoryUseCase) SaveCategories(ctx context.Context, sessionID, text string) (*dto.CategoriesResponse, error) {
	categories := splitCategories(text)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: ingrese al menos una categoría", domain.ErrValidation)
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.LoggedIn {
		return nil, domain.ErrUnauthorized
	}
	path, err := uc.artifacts.WriteCategories(ctx, session.CurrentUser, text)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{Categories: categories, Path: path}, nil
}

// SaveDataset persiste la copia de trabajo en la cuenta y escribe inventory_data.csv.
func (uc *InventoryUseCase) SaveDataset(ctx context.Context, sessionID string) (*dto.SaveDatasetResponse, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ds, err := session.Dataset()
	if err != nil {
		return nil, err
	}
	if err := uc.accounts.SaveDataset(ctx, session.CurrentUser, ds); err != nil {
		return nil, fmt.Errorf("guardar dataset: %w", err)
	}
	path, err := uc.artifacts.WriteSnapshot(ctx, session.CurrentUser, ds)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", session.CurrentUser).Int("rows", ds.Len()).Msg("dataset guardado")
	return &dto.SaveDatasetResponse{Rows: ds.Len(), SnapshotPath: path}, nil
}

func (uc *InventoryUseCase) dataset(ctx context.Context, sessionID string) (*entity.Dataset, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Dataset()
}

func normalizeSelector(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, SelectorAll) {
		return ""
	}
	return v
}

func splitCategories(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toRecordDTO(r entity.InventoryRecord) dto.RecordDTO {
	return dto.RecordDTO{
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

func toRecordDTOs(records []entity.InventoryRecord) []dto.RecordDTO {
	out := make([]dto.RecordDTO, len(records))
	for i, r := range records {
		out[i] = toRecordDTO(r)
	}
	return out
}
