package additionalinfo

import (
	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
)

// InfoDTO is the informacoes_adicionais payload.
type InfoDTO struct {
	ID        uint                 `json:"id"`
	ProductID uint                 `json:"produto_id"`
	Brand     *string              `json:"marca"`
	Supplier  *string              `json:"fornecedor"`
	Barcode   *string              `json:"codigo_barras"`
	Notes     *string              `json:"notas"`
	Product   *products.ProductDTO `json:"produto,omitempty"`
}

func NewInfoDTO(i *models.AdditionalInfo) *InfoDTO {
	return &InfoDTO{
		ID:        i.ID,
		ProductID: i.ProductID,
		Brand:     i.Brand,
		Supplier:  i.Supplier,
		Barcode:   i.Barcode,
		Notes:     i.Notes,
		Product:   products.NewProductDTO(i.Product, i.Brand),
	}
}
