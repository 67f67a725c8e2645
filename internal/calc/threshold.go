package calc

import (
	"math"

	"github.com/fareline/fareline/internal/model"
)

// Threshold checks a single offer against the driver's per-minute and
// per-mile floors. Each check produces its own minimum fare (rounded
// up to the cent) and verdict; the combined minimum is whichever check
// binds harder. An offer exactly equal to a minimum is accepted.
func Threshold(in model.ThresholdInput) model.ThresholdResult {
	minutes := NonNegative(in.Minutes)
	miles := NonNegative(in.Miles)
	offer := NonNegative(in.Offer)
	perMinute := NonNegative(in.PerMinuteFloor)
	perMile := NonNegative(in.PerMileFloor)

	minByTime := CeilCents(minutes * perMinute)
	minByMiles := CeilCents(miles * perMile)
	minCombined := math.Max(minByTime, minByMiles)

	binding := model.BindingMiles
	if minByTime >= minByMiles {
		binding = model.BindingTime
	}

	return model.ThresholdResult{
		MinByTime:        minByTime,
		MinByMiles:       minByMiles,
		MinCombined:      minCombined,
		Binding:          binding,
		TimeDecision:     decide(offer, minByTime),
		MilesDecision:    decide(offer, minByMiles),
		CombinedDecision: decide(offer, minCombined),
	}
}

func decide(offer, minimum float64) model.Decision {
	if offer >= minimum {
		return model.DecisionAccept
	}
	return model.DecisionReject
}
