package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ParseID reads a positive integer route parameter.
func ParseID(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, pkgerrors.Validation("invalid id", map[string]string{key: "must be a positive integer"})
	}
	return uint(id), nil
}

// ParseOptionalQueryID reads an optional positive integer query parameter.
// A missing parameter yields nil.
func ParseOptionalQueryID(r *http.Request, key string) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, pkgerrors.Validation("query parameter must be a positive integer", map[string]string{key: "must be a positive integer"})
	}
	value := uint(id)
	return &value, nil
}

// ParseOptionalQueryString returns the trimmed parameter, nil when absent or blank.
func ParseOptionalQueryString(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
