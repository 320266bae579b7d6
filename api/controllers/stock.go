package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantry-backend/api/responses"
	"github.com/angelmondragon/pantry-backend/api/validators"
	"github.com/angelmondragon/pantry-backend/internal/stock"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

type createStockRequest struct {
	ProductID       uint             `json:"produto_id" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantidade_atual,omitempty"`
	Unit            string           `json:"unidade_medida" validate:"required,notblank,max=50"`
	MinimumQuantity *decimal.Decimal `json:"quantidade_minima,omitempty"`
	ExpiresAt       *types.Date      `json:"data_validade,omitempty"`
	Location        *string          `json:"local_armazenamento,omitempty" validate:"omitempty,max=100"`
}

func (r createStockRequest) toInput() stock.CreateStockInput {
	return stock.CreateStockInput{
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		MinimumQuantity: r.MinimumQuantity,
		ExpiresAt:       r.ExpiresAt.TimePtr(),
		Location:        r.Location,
	}
}

type updateStockRequest struct {
	ProductID       *uint                      `json:"produto_id,omitempty" validate:"omitempty,min=1"`
	Quantity        *decimal.Decimal           `json:"quantidade_atual,omitempty"`
	Unit            *string                    `json:"unidade_medida,omitempty" validate:"omitempty,notblank,max=50"`
	MinimumQuantity *decimal.Decimal           `json:"quantidade_minima,omitempty"`
	ExpiresAt       types.Nullable[types.Date] `json:"data_validade"`
	Location        types.Nullable[string]     `json:"local_armazenamento" validate:"omitempty,max=100"`
}

func (r updateStockRequest) toInput() stock.UpdateStockInput {
	return stock.UpdateStockInput{
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		MinimumQuantity: r.MinimumQuantity,
		ExpiresAt:       nullableTime(r.ExpiresAt),
		Location:        r.Location,
	}
}

func CreateStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, item)
	}
}

// ListStock accepts an optional ?produto_id= filter.
func ListStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseOptionalQueryID(r, productIDQuery)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), stock.ListFilter{ProductID: productID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func GetStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func UpdateStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func DeleteStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, stock.MsgDeleted)
	}
}
