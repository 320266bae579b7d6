package models

// AdditionalInfo holds optional product metadata.
type AdditionalInfo struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID uint    `gorm:"column:produto_id;not null;index"`
	Brand     *string `gorm:"column:marca;size:100"`
	Supplier  *string `gorm:"column:fornecedor;size:100"`
	Barcode   *string `gorm:"column:codigo_barras;size:50;uniqueIndex"`
	Notes     *string `gorm:"column:notas;type:text"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (AdditionalInfo) TableName() string { return "informacoes_adicionais" }
