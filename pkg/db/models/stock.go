package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock tracks the quantity on hand for a product.
type Stock struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       uint            `gorm:"column:produto_id;not null;index"`
	Quantity        decimal.Decimal `gorm:"column:quantidade_atual;type:numeric(10,2);not null;default:0"`
	Unit            string          `gorm:"column:unidade_medida;size:50;not null"`
	MinimumQuantity decimal.Decimal `gorm:"column:quantidade_minima;type:numeric(10,2);not null;default:0"`
	ExpiresAt       *time.Time      `gorm:"column:data_validade"`
	Location        *string         `gorm:"column:local_armazenamento;size:100"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Stock) TableName() string { return "estoque" }

// BelowMinimum reports whether the current quantity dropped under the configured minimum.
func (s Stock) BelowMinimum() bool {
	return s.Quantity.LessThan(s.MinimumQuantity)
}
