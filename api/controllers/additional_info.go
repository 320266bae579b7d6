package controllers

import (
	"net/http"

	"github.com/angelmondragon/pantry-backend/api/responses"
	"github.com/angelmondragon/pantry-backend/api/validators"
	"github.com/angelmondragon/pantry-backend/internal/additionalinfo"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/types"
)

type createInfoRequest struct {
	ProductID uint    `json:"produto_id" validate:"required"`
	Brand     *string `json:"marca,omitempty" validate:"omitempty,max=100"`
	Supplier  *string `json:"fornecedor,omitempty" validate:"omitempty,max=100"`
	Barcode   *string `json:"codigo_barras,omitempty" validate:"omitempty,max=50"`
	Notes     *string `json:"notas,omitempty"`
}

func (r createInfoRequest) toInput() additionalinfo.CreateInfoInput {
	return additionalinfo.CreateInfoInput{
		ProductID: r.ProductID,
		Brand:     r.Brand,
		Supplier:  r.Supplier,
		Barcode:   r.Barcode,
		Notes:     r.Notes,
	}
}

type updateInfoRequest struct {
	ProductID *uint                  `json:"produto_id,omitempty" validate:"omitempty,min=1"`
	Brand     types.Nullable[string] `json:"marca" validate:"omitempty,max=100"`
	Supplier  types.Nullable[string] `json:"fornecedor" validate:"omitempty,max=100"`
	Barcode   types.Nullable[string] `json:"codigo_barras" validate:"omitempty,max=50"`
	Notes     types.Nullable[string] `json:"notas"`
}

func (r updateInfoRequest) toInput() additionalinfo.UpdateInfoInput {
	return additionalinfo.UpdateInfoInput{
		ProductID: r.ProductID,
		Brand:     r.Brand,
		Supplier:  r.Supplier,
		Barcode:   r.Barcode,
		Notes:     r.Notes,
	}
}

func CreateInfo(svc additionalinfo.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createInfoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		info, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, info)
	}
}

func ListInfo(svc additionalinfo.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseOptionalQueryID(r, productIDQuery)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), additionalinfo.ListFilter{ProductID: productID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func GetInfo(svc additionalinfo.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		info, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, info)
	}
}

func UpdateInfo(svc additionalinfo.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseID(r, idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateInfoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		info, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, info)
	}
}

func DeleteInfo(svc additionalinfo.Service, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteMessage(w, additionalinfo.MsgDeleted)
	}
}
