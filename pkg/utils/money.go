package utils

import "math"

// RoundPrice rounds a monetary amount to two decimal places.
// Totals are derived values; rounding happens once at the edge, never on
// the stored per-line prices.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}
