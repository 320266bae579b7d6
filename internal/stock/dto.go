package stock

import (
	"time"

	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

// StockDTO is the estoque payload. Quantities are fixed two-place decimal strings.
type StockDTO struct {
	ID              uint                 `json:"id"`
	ProductID       uint                 `json:"produto_id"`
	Quantity        string               `json:"quantidade_atual"`
	Unit            string               `json:"unidade_medida"`
	MinimumQuantity string               `json:"quantidade_minima"`
	ExpiresAt       *time.Time           `json:"data_validade"`
	Location        *string              `json:"local_armazenamento"`
	BelowMinimum    bool                 `json:"abaixo_minimo"`
	Product         *products.ProductDTO `json:"produto,omitempty"`
}

// NewStockDTO maps a stock row, including its preloaded product.
func NewStockDTO(s *models.Stock) *StockDTO {
	return &StockDTO{
		ID:              s.ID,
		ProductID:       s.ProductID,
		Quantity:        types.FormatDecimal(s.Quantity),
		Unit:            s.Unit,
		MinimumQuantity: types.FormatDecimal(s.MinimumQuantity),
		ExpiresAt:       utcPtr(s.ExpiresAt),
		Location:        s.Location,
		BelowMinimum:    s.BelowMinimum(),
		Product:         products.NewProductDTO(s.Product, nil),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
