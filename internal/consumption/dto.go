package consumption

import (
	"time"

	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
)

// HistoryDTO is the historico_consumo payload.
type HistoryDTO struct {
	ID        uint                 `json:"id"`
	ProductID uint                 `json:"produto_id"`
	EnteredAt time.Time            `json:"data_entrada"`
	LastUsed  *time.Time           `json:"ultima_utilizacao"`
	UsageFreq int                  `json:"frequencia_uso"`
	Product   *products.ProductDTO `json:"produto,omitempty"`
}

// NewHistoryDTO maps a history row, including its preloaded product.
func NewHistoryDTO(h *models.ConsumptionHistory) *HistoryDTO {
	dto := &HistoryDTO{
		ID:        h.ID,
		ProductID: h.ProductID,
		EnteredAt: h.EnteredAt.UTC(),
		UsageFreq: h.UsageFreq,
		Product:   products.NewProductDTO(h.Product, nil),
	}
	if h.LastUsed != nil {
		last := h.LastUsed.UTC()
		dto.LastUsed = &last
	}
	return dto
}
