package products

import (
	"context"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wires the product table and the brand column kept on additional info.
type Repository struct {
	products *repo.Table[models.Product]
	info     *repo.Table[models.AdditionalInfo]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		products: repo.NewTable[models.Product](db),
		info:     repo.NewTable[models.AdditionalInfo](db),
	}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		products: r.products.WithTx(tx),
		info:     r.info.WithTx(tx),
	}
}

func (r *Repository) Create(ctx context.Context, p *models.Product) error {
	return r.products.Create(ctx, p)
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.products.FindByID(ctx, id)
}

func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	return r.products.List(ctx, nil)
}

func (r *Repository) Update(ctx context.Context, id uint, columns map[string]any) error {
	return r.products.UpdateColumns(ctx, id, columns)
}

// Delete removes the product; stock, history, info and shopping list rows cascade.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.products.Delete(ctx, id)
}

// Brands returns the brand of each product that has one. The brand lives on
// the product's oldest additional info row, the same row SetBrand writes.
func (r *Repository) Brands(ctx context.Context, productIDs ...uint) (map[uint]string, error) {
	out := map[uint]string{}
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []models.AdditionalInfo
	if err := r.info.DB(ctx).
		Where("produto_id IN ?", productIDs).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	seen := make(map[uint]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ProductID]; ok {
			continue
		}
		seen[row.ProductID] = struct{}{}
		if row.Brand != nil {
			out[row.ProductID] = *row.Brand
		}
	}
	return out, nil
}

// SetBrand writes brand (nil clears it) onto the product's first additional
// info row, creating one when none exists.
func (r *Repository) SetBrand(ctx context.Context, productID uint, brand *string) error {
	var existing models.AdditionalInfo
	err := r.info.DB(ctx).
		Where("produto_id = ?", productID).
		Order("id").
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return err
	}

	if existing.ID == 0 {
		if brand == nil {
			return nil
		}
		return r.info.Create(ctx, &models.AdditionalInfo{ProductID: productID, Brand: brand})
	}
	return r.info.UpdateColumns(ctx, existing.ID, map[string]any{"marca": brand})
}
