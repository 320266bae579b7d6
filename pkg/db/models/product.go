package models

// Product is a pantry item. Every other pantry table hangs off it and is
// removed with it.
type Product struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:nome;size:255;not null"`
	Category string `gorm:"column:categoria;size:255;not null"`
}

func (Product) TableName() string { return "produtos" }
