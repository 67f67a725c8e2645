package model

// PlannerInput describes a monthly earnings goal and the schedule the
// driver intends to work it with. Values arrive raw from flags or
// config and are sanitized by the planner itself.
type PlannerInput struct {
	EarningsGoal float64 `json:"earnings_goal"`
	DaysInMonth  float64 `json:"days_in_month"`
	HoursPerDay  float64 `json:"hours_per_day"`
	IdlePercent  float64 `json:"idle_percent"`
}

// PlannerResult breaks a monthly goal down into daily and hourly
// targets. DollarsPerHourActive divides the daily target by effective
// (non-idle) hours only, so it is always at least DollarsPerHourAllIn.
type PlannerResult struct {
	Brackets             []BracketRow `json:"brackets"`
	DailyTarget          float64      `json:"daily_target"`
	EffectiveHours       float64      `json:"effective_hours"`
	DollarsPerHourAllIn  float64      `json:"dollars_per_hour_all_in"`
	DollarsPerHourActive float64      `json:"dollars_per_hour_active"`
	PerMinuteActive      float64      `json:"per_minute_active"`
}

// BracketRow is one line of the per-ride threshold table: at a given
// daily ride volume and per-mile floor, the smallest fare and longest
// trip that still keep the daily target reachable.
type BracketRow struct {
	Label        string  `json:"label"`
	Rides        int     `json:"rides"`
	PerMileFloor float64 `json:"per_mile_floor"`
	MinPerRide   float64 `json:"min_per_ride"`
	MaxMiles     float64 `json:"max_miles"`
}
