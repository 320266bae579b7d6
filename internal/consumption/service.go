package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Histórico de consumo não encontrado"
	MsgDeleted  = "Histórico de consumo deletado"
)

// Service exposes consumption history operations.
type Service interface {
	Create(ctx context.Context, input CreateHistoryInput) (*HistoryDTO, error)
	Get(ctx context.Context, id uint) (*HistoryDTO, error)
	List(ctx context.Context, filter ListFilter) ([]HistoryDTO, error)
	Update(ctx context.Context, id uint, input UpdateHistoryInput) (*HistoryDTO, error)
	Delete(ctx context.Context, id uint) error
	// RecordUsage counts one more use of the product and stamps the time.
	RecordUsage(ctx context.Context, id uint) (*HistoryDTO, error)
}

// CreateHistoryInput holds the payload to open a history row.
type CreateHistoryInput struct {
	ProductID uint
	EnteredAt *time.Time
	LastUsed  *time.Time
	UsageFreq *int
}

// UpdateHistoryInput holds optional mutation values.
type UpdateHistoryInput struct {
	ProductID *uint
	EnteredAt *time.Time
	LastUsed  types.Nullable[time.Time]
	UsageFreq *int
}

// ListFilter narrows List; a nil ProductID returns every row.
type ListFilter struct {
	ProductID *uint
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	now      func() time.Time
}

// NewService constructs a consumption history service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("consumption repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateHistoryInput) (*HistoryDTO, error) {
	fields := pkgerrors.FieldErrors{}
	if input.ProductID == 0 {
		fields.Add("produto_id", "is required")
	}
	if input.EnteredAt == nil {
		fields.Add("data_entrada", "is required")
	}
	freq := 0
	if input.UsageFreq != nil {
		freq = *input.UsageFreq
		validateFreq(fields, freq)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	record := &models.ConsumptionHistory{
		ProductID: input.ProductID,
		EnteredAt: input.EnteredAt.UTC(),
		LastUsed:  input.LastUsed,
		UsageFreq: freq,
	}

	var created *models.ConsumptionHistory
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
	return NewHistoryDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uint) (*HistoryDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewHistoryDTO(record), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]HistoryDTO, error) {
	where := map[string]any{}
	if filter.ProductID != nil {
		where["produto_id"] = *filter.ProductID
	}
	rows, err := s.repo.List(ctx, where)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	out := make([]HistoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewHistoryDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateHistoryInput) (*HistoryDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.ProductID != nil {
		if *input.ProductID == 0 {
			fields.Add("produto_id", "is required")
		}
		columns["produto_id"] = *input.ProductID
	}
	if input.EnteredAt != nil {
		columns["data_entrada"] = input.EnteredAt.UTC()
	}
	if input.LastUsed.Present {
		columns["ultima_utilizacao"] = input.LastUsed.Value
	}
	if input.UsageFreq != nil {
		validateFreq(fields, *input.UsageFreq)
		columns["frequencia_uso"] = *input.UsageFreq
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(tx *gorm.DB, txRepo *Repository) error {
		if input.ProductID != nil {
			if err := repo.EnsureProduct(ctx, tx, *input.ProductID); err != nil {
				return err
			}
		}
		return txRepo.UpdateColumns(ctx, id, columns)
	})
}

func (s *service) RecordUsage(ctx context.Context, id uint) (*HistoryDTO, error) {
	at := s.now().UTC()
	return s.mutate(ctx, id, func(_ *gorm.DB, txRepo *Repository) error {
		return txRepo.IncrementUsage(ctx, id, at)
	})
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return db.Classify(s.repo.Delete(ctx, id), MsgNotFound)
}

// mutate runs find, apply and refetch for id in one transaction.
func (s *service) mutate(ctx context.Context, id uint, apply func(tx *gorm.DB, txRepo *Repository) error) (*HistoryDTO, error) {
	var updated *models.ConsumptionHistory
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := apply(tx, txRepo); err != nil {
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
	return NewHistoryDTO(updated), nil
}

func validateFreq(fields pkgerrors.FieldErrors, freq int) {
	if freq < 0 {
		fields.Add("frequencia_uso", "must be greater than or equal to 0")
	}
}
