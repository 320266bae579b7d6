package products

import "github.com/angelmondragon/pantry-backend/pkg/db/models"

// ProductDTO is the product payload returned to clients, also embedded as
// "produto" in dependent records.
type ProductDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Brand    *string `json:"marca,omitempty"`
}

// NewProductDTO maps a product row. brand comes from its additional info, when loaded.
func NewProductDTO(p *models.Product, brand *string) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Brand:    brand,
	}
}
