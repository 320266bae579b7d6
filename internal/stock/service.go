package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Item do estoque não encontrado"
	MsgDeleted  = "Item do estoque deletado"

	maxUnitLen     = 50
	maxLocationLen = 100
)

// Service exposes stock operations.
type Service interface {
	Create(ctx context.Context, input CreateStockInput) (*StockDTO, error)
	Get(ctx context.Context, id uint) (*StockDTO, error)
	List(ctx context.Context, filter ListFilter) ([]StockDTO, error)
	Update(ctx context.Context, id uint, input UpdateStockInput) (*StockDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CreateStockInput holds the payload to register stock. Nil quantities default to zero.
type CreateStockInput struct {
	ProductID       uint
	Quantity        *decimal.Decimal
	Unit            string
	MinimumQuantity *decimal.Decimal
	ExpiresAt       *time.Time
	Location        *string
}

// UpdateStockInput holds optional mutation values. Nullable fields accept an explicit null.
type UpdateStockInput struct {
	ProductID       *uint
	Quantity        *decimal.Decimal
	Unit            *string
	MinimumQuantity *decimal.Decimal
	ExpiresAt       types.Nullable[time.Time]
	Location        types.Nullable[string]
}

// ListFilter narrows List; a nil ProductID returns every row.
type ListFilter struct {
	ProductID *uint
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a stock service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateStockInput) (*StockDTO, error) {
	fields := pkgerrors.FieldErrors{}
	record := &models.Stock{
		ProductID:       input.ProductID,
		Quantity:        quantity(fields, "quantidade_atual", input.Quantity),
		Unit:            fields.Required("unidade_medida", input.Unit, maxUnitLen),
		MinimumQuantity: quantity(fields, "quantidade_minima", input.MinimumQuantity),
		ExpiresAt:       input.ExpiresAt,
		Location:        fields.Optional("local_armazenamento", input.Location, maxLocationLen),
	}
	if input.ProductID == 0 {
		fields.Add("produto_id", "is required")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var created *models.Stock
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if err := repo.EnsureProduct(ctx, tx, input.ProductID); err != nil {
			return err
		}
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, record); err != nil {
			return err
		}
		loaded, err := txRepo.FindByID(ctx, record.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewStockDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uint) (*StockDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewStockDTO(record), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]StockDTO, error) {
	where := map[string]any{}
	if filter.ProductID != nil {
		where["produto_id"] = *filter.ProductID
	}
	rows, err := s.repo.List(ctx, where)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	out := make([]StockDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewStockDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateStockInput) (*StockDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.ProductID != nil {
		if *input.ProductID == 0 {
			fields.Add("produto_id", "is required")
		}
		columns["produto_id"] = *input.ProductID
	}
	if input.Quantity != nil {
		columns["quantidade_atual"] = quantity(fields, "quantidade_atual", input.Quantity)
	}
	if input.Unit != nil {
		columns["unidade_medida"] = fields.Required("unidade_medida", *input.Unit, maxUnitLen)
	}
	if input.MinimumQuantity != nil {
		columns["quantidade_minima"] = quantity(fields, "quantidade_minima", input.MinimumQuantity)
	}
	if input.ExpiresAt.Present {
		columns["data_validade"] = input.ExpiresAt.Value
	}
	if input.Location.Present {
		columns["local_armazenamento"] = fields.Optional("local_armazenamento", input.Location.Value, maxLocationLen)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *models.Stock
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if input.ProductID != nil {
			if err := repo.EnsureProduct(ctx, tx, *input.ProductID); err != nil {
				return err
			}
		}
		if err := txRepo.UpdateColumns(ctx, id, columns); err != nil {
			return err
		}
		loaded, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		updated = loaded
		return nil
	})
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewStockDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return db.Classify(s.repo.Delete(ctx, id), MsgNotFound)
}

// quantity normalizes an optional non-negative amount; nil means zero.
func quantity(fields pkgerrors.FieldErrors, field string, value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	normalized, err := types.NonNegativeDecimal(*value)
	if err != nil {
		fields.Add(field, err.Error())
	}
	return normalized
}
