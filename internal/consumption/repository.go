package consumption

import (
	"context"
	"time"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and writes historico_consumo rows; reads preload the product.
type Repository struct {
	*repo.Table[models.ConsumptionHistory]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Table: repo.NewTable[models.ConsumptionHistory](db, "Product")}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Table: r.Table.WithTx(tx)}
}

// IncrementUsage bumps frequencia_uso in place and stamps ultima_utilizacao.
func (r *Repository) IncrementUsage(ctx context.Context, id uint, at time.Time) error {
	return r.UpdateColumns(ctx, id, map[string]any{
		"frequencia_uso":    gorm.Expr("frequencia_uso + ?", 1),
		"ultima_utilizacao": at,
	})
}
