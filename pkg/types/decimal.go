package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalPlaces is the scale of every NUMERIC(10,2) column.
const DecimalPlaces = 2

var decimalLimit = decimal.New(1, 8)

// NormalizeDecimal rounds to two places and rejects values a NUMERIC(10,2)
// column cannot hold.
func NormalizeDecimal(d decimal.Decimal) (decimal.Decimal, error) {
	rounded := d.Round(DecimalPlaces)
	if rounded.Abs().GreaterThanOrEqual(decimalLimit) {
		return decimal.Decimal{}, fmt.Errorf("must be less than %s in magnitude", decimalLimit.String())
	}
	return rounded, nil
}

// NonNegativeDecimal is NormalizeDecimal plus a sign check.
func NonNegativeDecimal(d decimal.Decimal) (decimal.Decimal, error) {
	rounded, err := NormalizeDecimal(d)
	if err != nil {
		return rounded, err
	}
	if rounded.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("must be greater than or equal to 0")
	}
	return rounded, nil
}

// FormatDecimal renders with the fixed column scale, e.g. "10.50".
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(DecimalPlaces)
}
