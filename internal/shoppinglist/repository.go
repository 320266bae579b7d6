package shoppinglist

import (
	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and writes lista_compras rows; reads preload the product.
type Repository struct {
	*repo.Table[models.ShoppingListEntry]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Table: repo.NewTable[models.ShoppingListEntry](db, "Product")}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Table: r.Table.WithTx(tx)}
}
