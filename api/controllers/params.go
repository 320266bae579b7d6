package controllers

import (
	"time"

	"github.com/angelmondragon/pantry-backend/pkg/types"
)

const (
	idParam        = "id"
	productIDQuery = "produto_id"
	statusQuery    = "status"
)

func nullableTime(d types.Nullable[types.Date]) types.Nullable[time.Time] {
	if !d.Present {
		return types.Nullable[time.Time]{}
	}
	if d.Value == nil {
		return types.Null[time.Time]()
	}
	return types.Set(d.Value.Time)
}
