// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/buyout-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Decimal converts a float to a decimal. NaN and infinities become zero so a
// stray value never aborts a calculation.
func Decimal(val float64) decimal.Decimal {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(val)
}

// RoundCents rounds a decimal to whole cents, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(constants.CurrencyPlaces)
}
