package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantry-backend/api/responses"
	"github.com/angelmondragon/pantry-backend/api/validators"
	"github.com/angelmondragon/pantry-backend/internal/shoppinglist"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

type createEntryRequest struct {
	ProductID    uint             `json:"produto_id" validate:"required"`
	Status       string           `json:"status" validate:"required"`
	Restock      *bool            `json:"sugestao_recompra,omitempty"`
	AveragePrice *decimal.Decimal `json:"preco_medio,omitempty"`
}

func (r createEntryRequest) toInput() shoppinglist.CreateEntryInput {
	return shoppinglist.CreateEntryInput{
		ProductID:    r.ProductID,
		Status:       r.Status,
		Restock:      r.Restock,
		AveragePrice: r.AveragePrice,
	}
}

type updateEntryRequest struct {
	ProductID    *uint                           `json:"produto_id,omitempty" validate:"omitempty,min=1"`
	Status       *string                         `json:"status,omitempty"`
	Restock      *bool                           `json:"sugestao_recompra,omitempty"`
	AveragePrice types.Nullable[decimal.Decimal] `json:"preco_medio"`
}

func (r updateEntryRequest) toInput() shoppinglist.UpdateEntryInput {
	return shoppinglist.UpdateEntryInput{
		ProductID:    r.ProductID,
		Status:       r.Status,
		Restock:      r.Restock,
		AveragePrice: r.AveragePrice,
	}
}

func CreateEntry(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createEntryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, entry)
	}
}

// ListEntries accepts optional ?produto_id= and ?status= filters.
func ListEntries(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseOptionalQueryID(r, productIDQuery)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := shoppinglist.ListFilter{
			ProductID: productID,
			Status:    validators.ParseOptionalQueryString(r, statusQuery),
		}
		entries, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

func GetEntry(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func UpdateEntry(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateEntryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func DeleteEntry(svc shoppinglist.Service, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteMessage(w, shoppinglist.MsgDeleted)
	}
}
