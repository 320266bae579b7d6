package controllers

import (
	"net/http"

	"github.com/angelmondragon/pantry-backend/api/responses"
	"github.com/angelmondragon/pantry-backend/api/validators"
	"github.com/angelmondragon/pantry-backend/internal/consumption"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

type createHistoryRequest struct {
	ProductID uint        `json:"produto_id" validate:"required"`
	EnteredAt *types.Date `json:"data_entrada" validate:"required"`
	LastUsed  *types.Date `json:"ultima_utilizacao,omitempty"`
	UsageFreq *int        `json:"frequencia_uso,omitempty" validate:"omitempty,min=0"`
}

func (r createHistoryRequest) toInput() consumption.CreateHistoryInput {
	return consumption.CreateHistoryInput{
		ProductID: r.ProductID,
		EnteredAt: r.EnteredAt.TimePtr(),
		LastUsed:  r.LastUsed.TimePtr(),
		UsageFreq: r.UsageFreq,
	}
}

type updateHistoryRequest struct {
	ProductID *uint                      `json:"produto_id,omitempty" validate:"omitempty,min=1"`
	EnteredAt *types.Date                `json:"data_entrada,omitempty"`
	LastUsed  types.Nullable[types.Date] `json:"ultima_utilizacao"`
	UsageFreq *int                       `json:"frequencia_uso,omitempty" validate:"omitempty,min=0"`
}

func (r updateHistoryRequest) toInput() consumption.UpdateHistoryInput {
	return consumption.UpdateHistoryInput{
		ProductID: r.ProductID,
		EnteredAt: r.EnteredAt.TimePtr(),
		LastUsed:  nullableTime(r.LastUsed),
		UsageFreq: r.UsageFreq,
	}
}

func CreateHistory(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createHistoryRequest
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

func ListHistory(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseOptionalQueryID(r, productIDQuery)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := svc.List(r.Context(), consumption.ListFilter{ProductID: productID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

func GetHistory(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
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

func UpdateHistory(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateHistoryRequest
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

// RecordUsage bumps frequencia_uso and stamps ultima_utilizacao with the current time.
func RecordUsage(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.RecordUsage(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

func DeleteHistory(svc consumption.Service, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteMessage(w, consumption.MsgDeleted)
	}
}
