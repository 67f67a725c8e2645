package calc

import "math"

// CeilCents rounds a dollar amount up to the next cent, so a minimum
// fare never dips below the exact rate product. Non-finite and
// negative amounts collapse to 0.
func CeilCents(v float64) float64 {
	v = NonNegative(v)
	if v == 0 {
		return 0
	}
	return math.Ceil(v*100) / 100
}
