// Package money provides helpers for working with currency amounts. All
// monetary values in the planner are decimal.Decimal quantized to cents so
// that balances can reach exactly zero without float drift.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FromFloat converts a float64 amount to a cent-quantized decimal. Inputs
// originate from config files and user entry, so quantizing at the boundary
// keeps every later operation exact.
func FromFloat(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val).Round(2)
}

// Parse converts a string amount to a cent-quantized decimal. Leading dollar
// signs, commas, and surrounding whitespace are tolerated.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Round(2), nil
}

// MustParse is Parse for statically known amounts, typically in tests.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Min returns the smaller of two decimal amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
