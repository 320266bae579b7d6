package shoppinglist

import (
	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

// EntryDTO is the lista_compras payload. The average price is a fixed two-place string.
type EntryDTO struct {
	ID           uint                 `json:"id"`
	ProductID    uint                 `json:"produto_id"`
	Status       string               `json:"status"`
	Restock      bool                 `json:"sugestao_recompra"`
	AveragePrice *string              `json:"preco_medio"`
	Product      *products.ProductDTO `json:"produto,omitempty"`
}

func NewEntryDTO(e *models.ShoppingListEntry) *EntryDTO {
	dto := &EntryDTO{
		ID:        e.ID,
		ProductID: e.ProductID,
		Status:    e.Status.String(),
		Restock:   e.Restock,
		Product:   products.NewProductDTO(e.Product, nil),
	}
	if e.AveragePrice.Valid {
		price := types.FormatDecimal(e.AveragePrice.Decimal)
		dto.AveragePrice = &price
	}
	return dto
}
