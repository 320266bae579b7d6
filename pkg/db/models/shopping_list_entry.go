package models

import (
	"github.com/angelmondragon/pantry-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// ShoppingListEntry flags a product for restocking.
type ShoppingListEntry struct {
	ID           uint                 `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID    uint                 `gorm:"column:produto_id;not null;index"`
	Status       enums.ShoppingStatus `gorm:"column:status;size:20;not null"`
	Restock      bool                 `gorm:"column:sugestao_recompra;not null;default:false"`
	AveragePrice decimal.NullDecimal  `gorm:"column:preco_medio;type:numeric(10,2)"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ShoppingListEntry) TableName() string { return "lista_compras" }
