package products

import (
	"context"
	"fmt"

	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"gorm.io/gorm"
)

const (
	MsgNotFound = db.MsgProductNotFound
	MsgDeleted  = "Produto deletado"

	maxNameLen  = 255
	maxBrandLen = 100
)

// Service exposes product management operations.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Get(ctx context.Context, id uint) (*ProductDTO, error)
	List(ctx context.Context) ([]ProductDTO, error)
	Update(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CreateProductInput holds the payload to create a product.
type CreateProductInput struct {
	Name     string
	Category string
	Brand    *string
}

// UpdateProductInput holds optional mutation values. A null Brand clears it.
type UpdateProductInput struct {
	Name     *string
	Category *string
	Brand    types.Nullable[string]
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	fields := pkgerrors.FieldErrors{}
	name := fields.Required("nome", input.Name, maxNameLen)
	category := fields.Required("categoria", input.Category, maxNameLen)
	brand := fields.NonBlank("marca", input.Brand, maxBrandLen)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	product := &models.Product{Name: name, Category: category}
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, product); err != nil {
			return err
		}
		if brand != nil {
			return txRepo.SetBrand(ctx, product.ID, brand)
		}
		return nil
	})
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}

	return NewProductDTO(product, brand), nil
}

func (s *service) Get(ctx context.Context, id uint) (*ProductDTO, error) {
	return s.load(ctx, s.repo, id)
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	brands, err := s.repo.Brands(ctx, ids...)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}

	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewProductDTO(&rows[i], brandPtr(brands, rows[i].ID)))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateProductInput) (*ProductDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.Name != nil {
		columns["nome"] = fields.Required("nome", *input.Name, maxNameLen)
	}
	if input.Category != nil {
		columns["categoria"] = fields.Required("categoria", *input.Category, maxNameLen)
	}
	brand := fields.NonBlank("marca", input.Brand.Ptr(), maxBrandLen)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *ProductDTO
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := txRepo.Update(ctx, id, columns); err != nil {
			return err
		}
		if input.Brand.Present {
			if err := txRepo.SetBrand(ctx, id, brand); err != nil {
				return err
			}
		}
		dto, err := s.load(ctx, txRepo, id)
		if err != nil {
			return err
		}
		updated = dto
		return nil
	})
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return db.Classify(s.repo.Delete(ctx, id), MsgNotFound)
}

func (s *service) load(ctx context.Context, r *Repository, id uint) (*ProductDTO, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	brands, err := r.Brands(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewProductDTO(product, brandPtr(brands, id)), nil
}

func brandPtr(brands map[uint]string, id uint) *string {
	if b, ok := brands[id]; ok {
		return &b
	}
	return nil
}
