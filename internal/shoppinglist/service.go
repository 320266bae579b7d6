package shoppinglist

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"github.com/angelmondragon/pantry-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Item da lista de compras não encontrado"
	MsgDeleted  = "Item da lista de compras deletado"
)

// Service exposes shopping list operations.
type Service interface {
	Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error)
	Get(ctx context.Context, id uint) (*EntryDTO, error)
	List(ctx context.Context, filter ListFilter) ([]EntryDTO, error)
	Update(ctx context.Context, id uint, input UpdateEntryInput) (*EntryDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CreateEntryInput holds the payload. Restock defaults to false.
type CreateEntryInput struct {
	ProductID    uint
	Status       string
	Restock      *bool
	AveragePrice *decimal.Decimal
}

// UpdateEntryInput holds optional mutation values. A null price clears it.
type UpdateEntryInput struct {
	ProductID    *uint
	Status       *string
	Restock      *bool
	AveragePrice types.Nullable[decimal.Decimal]
}

// ListFilter narrows List by product and/or status.
type ListFilter struct {
	ProductID *uint
	Status    *string
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a shopping list service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shopping list repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error) {
	fields := pkgerrors.FieldErrors{}
	if input.ProductID == 0 {
		fields.Add("produto_id", "is required")
	}
	record := &models.ShoppingListEntry{
		ProductID:    input.ProductID,
		Status:       status(fields, input.Status),
		AveragePrice: price(fields, input.AveragePrice),
	}
	if input.Restock != nil {
		record.Restock = *input.Restock
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var created *models.ShoppingListEntry
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
	return NewEntryDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uint) (*EntryDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewEntryDTO(record), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]EntryDTO, error) {
	where := map[string]any{}
	if filter.ProductID != nil {
		where["produto_id"] = *filter.ProductID
	}
	if filter.Status != nil {
		fields := pkgerrors.FieldErrors{}
		where["status"] = status(fields, *filter.Status)
		if err := fields.Err(); err != nil {
			return nil, err
		}
	}
	rows, err := s.repo.List(ctx, where)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	out := make([]EntryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewEntryDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateEntryInput) (*EntryDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.ProductID != nil {
		if *input.ProductID == 0 {
			fields.Add("produto_id", "is required")
		}
		columns["produto_id"] = *input.ProductID
	}
	if input.Status != nil {
		columns["status"] = status(fields, *input.Status)
	}
	if input.Restock != nil {
		columns["sugestao_recompra"] = *input.Restock
	}
	if input.AveragePrice.Present {
		columns["preco_medio"] = price(fields, input.AveragePrice.Value)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *models.ShoppingListEntry
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
	return NewEntryDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return db.Classify(s.repo.Delete(ctx, id), MsgNotFound)
}

func status(fields pkgerrors.FieldErrors, raw string) enums.ShoppingStatus {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		fields.Add("status", "is required")
		return ""
	}
	parsed, err := enums.ParseShoppingStatus(trimmed)
	if err != nil {
		fields.Add("status", fmt.Sprintf("must be one of %s", statusChoices()))
	}
	return parsed
}

func statusChoices() string {
	all := enums.ShoppingStatuses()
	names := make([]string, 0, len(all))
	for _, st := range all {
		names = append(names, st.String())
	}
	return strings.Join(names, ", ")
}

// price normalizes an optional average price; nil stays NULL.
func price(fields pkgerrors.FieldErrors, value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	normalized, err := types.NonNegativeDecimal(*value)
	if err != nil {
		fields.Add("preco_medio", err.Error())
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(normalized)
}
