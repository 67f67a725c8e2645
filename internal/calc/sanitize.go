// Package calc implements the three fareline calculators: the offer
// threshold check, the monthly planner, and the blended earnings
// estimator. Every function here is a pure, single-pass transformation
// of an input record into a result record. Nothing fails: malformed
// numbers are coerced to safe values instead of returning errors.
package calc

import "math"

// daysFallback replaces unusable day counts wherever one is entered.
const daysFallback = 1

// NonNegative coerces NaN, infinities, and negative values to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SanitizeDays normalizes a days-in-month count. Non-finite values and
// anything below one day fall back to 1, so downstream divisions by a
// day count always see a value >= 1.
func SanitizeDays(days float64) float64 {
	if math.IsNaN(days) || math.IsInf(days, 0) || days < 1 {
		return daysFallback
	}
	return days
}

// clamp bounds v to [lo, hi], mapping NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
