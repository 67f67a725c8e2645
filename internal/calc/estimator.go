package calc

import "github.com/fareline/fareline/internal/model"

const (
	// estimatorIdleFraction is the assumed share of on-app time spent
	// waiting without a ride.
	estimatorIdleFraction = 0.30
	// baseFloorRate is the conservative floor in dollars per active
	// minute; category rates are multiples of it.
	baseFloorRate = 0.60
)

// rideMix is the canonical short/medium/long ride template. Short
// rides pay a small premium per minute, long rides a small discount.
var rideMix = []model.RideCategory{
	{Name: "short", AvgMinutes: 8, RateMultiplier: 1.08, DefaultDailyCount: 10},
	{Name: "medium", AvgMinutes: 15, RateMultiplier: 1.00, DefaultDailyCount: 4},
	{Name: "long", AvgMinutes: 25, RateMultiplier: 0.95, DefaultDailyCount: 2},
}

// patternMinutes is the total active minutes the unscaled template
// consumes per day.
var patternMinutes = templateMinutes()

func templateMinutes() float64 {
	var total float64
	for _, c := range rideMix {
		total += c.DefaultDailyCount * c.AvgMinutes
	}
	return total
}

// Estimate projects daily and monthly earnings for a schedule. The
// ride-mix template is scaled proportionally so its total minutes fill
// the driver's active time, then priced per category. The floor
// figures price every active minute at the base rate instead.
func Estimate(in model.EstimatorInput) model.EstimatorResult {
	hours := NonNegative(in.HoursPerDay)
	days := NonNegative(in.DaysPerMonth)

	totalMinutes := hours * 60
	activeMinutes := totalMinutes - totalMinutes*estimatorIdleFraction

	var scale float64
	if patternMinutes > 0 {
		scale = activeMinutes / patternMinutes
	}

	categories := make([]model.CategoryEstimate, 0, len(rideMix))
	var dailyBlended float64
	var templateWeight float64
	for _, c := range rideMix {
		rate := baseFloorRate * c.RateMultiplier
		rides := c.DefaultDailyCount * scale
		categories = append(categories, model.CategoryEstimate{
			Name:          c.Name,
			AvgMinutes:    c.AvgMinutes,
			Rides:         rides,
			PerMinuteRate: rate,
		})
		dailyBlended += rides * c.AvgMinutes * rate
		templateWeight += c.DefaultDailyCount * c.AvgMinutes * c.RateMultiplier
	}

	dailyFloor := activeMinutes * baseFloorRate
	// Ordered so whole-dollar schedules land on whole dollars: six
	// hours over 25 days floors at exactly 3780.
	monthlyFloor := activeMinutes * days * baseFloorRate

	var blendedPerHour float64
	if patternMinutes > 0 {
		blendedPerHour = baseFloorRate * 60 * templateWeight / patternMinutes
	}

	return model.EstimatorResult{
		ActiveMinutesPerDay: activeMinutes,
		Categories:          categories,
		DailyFloor:          dailyFloor,
		DailyBlended:        dailyBlended,
		MonthlyFloor:        monthlyFloor,
		MonthlyBlended:      dailyBlended * days,
		BlendedPerHour:      blendedPerHour,
	}
}

// RideMix exposes a copy of the canonical template for display.
func RideMix() []model.RideCategory {
	out := make([]model.RideCategory, len(rideMix))
	copy(out, rideMix)
	return out
}
