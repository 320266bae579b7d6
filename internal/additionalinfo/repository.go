package additionalinfo

import (
	"context"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and writes informacoes_adicionais rows; reads preload the product.
type Repository struct {
	*repo.Table[models.AdditionalInfo]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Table: repo.NewTable[models.AdditionalInfo](db, "Product")}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Table: r.Table.WithTx(tx)}
}

// BarcodeTaken reports whether another row (not exceptID) already uses barcode.
func (r *Repository) BarcodeTaken(ctx context.Context, barcode string, exceptID uint) (bool, error) {
	var count int64
	q := r.DB(ctx).Model(&models.AdditionalInfo{}).Where("codigo_barras = ?", barcode)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
