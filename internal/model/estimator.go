package model

// EstimatorInput is the schedule to project earnings for. Everything
// else the estimator needs (idle fraction, floor rate, ride mix) is a
// fixed template.
type EstimatorInput struct {
	HoursPerDay  float64 `json:"hours_per_day"`
	DaysPerMonth float64 `json:"days_per_month"`
}

// RideCategory is one entry of the fixed short/medium/long ride-mix
// template the estimator scales to the driver's actual active time.
type RideCategory struct {
	Name              string  `json:"name"`
	AvgMinutes        float64 `json:"avg_minutes"`
	RateMultiplier    float64 `json:"rate_multiplier"`
	DefaultDailyCount float64 `json:"default_daily_count"`
}

// CategoryEstimate is a ride category scaled to the driver's schedule:
// how many such rides fit in a day and what they pay per minute.
type CategoryEstimate struct {
	Name          string  `json:"name"`
	AvgMinutes    float64 `json:"avg_minutes"`
	Rides         float64 `json:"rides"`
	PerMinuteRate float64 `json:"per_minute_rate"`
}

// EstimatorResult projects daily and monthly earnings two ways: a flat
// floor (every active minute at the base rate) and a blended model
// weighted by the ride-mix template. BlendedPerHour is derived from
// the template alone and does not vary with the driver's hours.
type EstimatorResult struct {
	Categories          []CategoryEstimate `json:"categories"`
	ActiveMinutesPerDay float64            `json:"active_minutes_per_day"`
	DailyFloor          float64            `json:"daily_floor"`
	DailyBlended        float64            `json:"daily_blended"`
	MonthlyFloor        float64            `json:"monthly_floor"`
	MonthlyBlended      float64            `json:"monthly_blended"`
	BlendedPerHour      float64            `json:"blended_per_hour"`
}
