package models

import "time"

// ConsumptionHistory records when a product entered the pantry and how often it is used.
type ConsumptionHistory struct {
	ID        uint       `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID uint       `gorm:"column:produto_id;not null;index"`
	EnteredAt time.Time  `gorm:"column:data_entrada;not null"`
	LastUsed  *time.Time `gorm:"column:ultima_utilizacao"`
	UsageFreq int        `gorm:"column:frequencia_uso;not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ConsumptionHistory) TableName() string { return "historico_consumo" }
