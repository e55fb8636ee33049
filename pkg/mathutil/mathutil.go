// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// Round rounds a value to two decimals, the precision used for EPS and
// index-level figures.
func Round(val float64) float64 {
	return math.Round(val*100) / 100
}

// RoundTo rounds a value to the given number of decimal places. Percent
// columns display at one decimal, levels and EPS at two.
func RoundTo(val float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(val*factor) / factor
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether a value is a usable number (not NaN or Inf).
// Projection intermediates are checked with this before they propagate.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
