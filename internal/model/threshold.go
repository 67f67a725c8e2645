// Package model defines the input and result records shared by the
// fareline calculators. Results are derived values, recomputed in full
// from their inputs; nothing here carries identity or lifecycle.
package model

// Decision is the verdict of checking an offer against a minimum fare.
type Decision string

const (
	// DecisionAccept means the offer meets or exceeds the minimum.
	DecisionAccept Decision = "accept"
	// DecisionReject means the offer falls short of the minimum.
	DecisionReject Decision = "reject"
)

// Binding identifies which check produced the governing minimum fare.
type Binding string

const (
	// BindingTime means the per-minute check governs. Ties favor time.
	BindingTime Binding = "time"
	// BindingMiles means the per-mile check governs.
	BindingMiles Binding = "miles"
)

// ThresholdInput holds the numbers a driver reads off an incoming offer
// plus their two personal rate floors. All fields are independent
// scalars in dollars, minutes, or miles.
type ThresholdInput struct {
	Minutes        float64 `json:"minutes"`
	Miles          float64 `json:"miles"`
	Offer          float64 `json:"offer"`
	PerMinuteFloor float64 `json:"per_minute_floor"`
	PerMileFloor   float64 `json:"per_mile_floor"`
}

// ThresholdResult is the accept/reject breakdown for a single offer.
// Minimum fares are rounded up to the cent, so they are always at
// least the exact product of the underlying rate and distance/time.
type ThresholdResult struct {
	Binding          Binding  `json:"binding"`
	TimeDecision     Decision `json:"time_decision"`
	MilesDecision    Decision `json:"miles_decision"`
	CombinedDecision Decision `json:"combined_decision"`
	MinByTime        float64  `json:"min_by_time"`
	MinByMiles       float64  `json:"min_by_miles"`
	MinCombined      float64  `json:"min_combined"`
}

// Accepted reports whether the offer clears the combined minimum.
func (r ThresholdResult) Accepted() bool {
	return r.CombinedDecision == DecisionAccept
}
