package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldErrors collects per-field validation messages keyed by wire name.
type FieldErrors map[string]string

// Add records msg for field, keeping the first message per field.
func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Required trims value and flags it when blank or longer than maxLen runes.
func (f FieldErrors) Required(field, value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		f.Add(field, "is required")
	case maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen:
		f.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return trimmed
}

// NonBlank is Required for a value that may be omitted. nil stays nil.
func (f FieldErrors) NonBlank(field string, value *string, maxLen int) *string {
	if value == nil {
		return nil
	}
	trimmed := f.Required(field, *value, maxLen)
	return &trimmed
}

// Optional trims value and only enforces the length limit.
func (f FieldErrors) Optional(field string, value *string, maxLen int) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		f.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return &trimmed
}

// Err returns a validation error carrying the collected fields, or nil.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return Validation("validation failed", f)
}
