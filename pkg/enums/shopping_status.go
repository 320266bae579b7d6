package enums

import "fmt"

// ShoppingStatus is the stock level reported on a shopping list entry.
type ShoppingStatus string

const (
	ShoppingStatusAvailable  ShoppingStatus = "Disponível"
	ShoppingStatusLow        ShoppingStatus = "Baixo"
	ShoppingStatusOutOfStock ShoppingStatus = "Esgotado"
)

var validShoppingStatuses = []ShoppingStatus{
	ShoppingStatusAvailable,
	ShoppingStatusLow,
	ShoppingStatusOutOfStock,
}

// String implements fmt.Stringer.
func (s ShoppingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShoppingStatus.
func (s ShoppingStatus) IsValid() bool {
	for _, candidate := range validShoppingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ShoppingStatuses lists the accepted values in display order.
func ShoppingStatuses() []ShoppingStatus {
	out := make([]ShoppingStatus, len(validShoppingStatuses))
	copy(out, validShoppingStatuses)
	return out
}

// ParseShoppingStatus converts raw input into a ShoppingStatus.
func ParseShoppingStatus(value string) (ShoppingStatus, error) {
	for _, candidate := range validShoppingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shopping status %q", value)
}
