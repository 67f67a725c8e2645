package calc

import (
	"math"

	"github.com/fareline/fareline/internal/model"
)

const (
	// minHoursPerDay keeps hourly divisions away from zero.
	minHoursPerDay = 0.1
	// maxIdlePercent caps idle time below 100% so effective hours
	// never collapse to zero.
	maxIdlePercent = 95
)

// planBrackets are the fixed ride-volume scenarios of the threshold
// table: the daily ride count and the per-mile floor a driver working
// that volume should hold out for.
var planBrackets = []struct {
	label        string
	rides        int
	perMileFloor float64
}{
	{"Relaxed", 10, 1.40},
	{"Steady", 20, 1.70},
	{"Hustle", 25, 2.40},
}

// Plan breaks a monthly earnings goal into daily and hourly targets.
// Idle time only shrinks the denominator of the active rates, so a
// higher idle percentage demands a higher active hourly rate for the
// same goal.
func Plan(in model.PlannerInput) model.PlannerResult {
	goal := NonNegative(in.EarningsGoal)
	days := SanitizeDays(in.DaysInMonth)

	hours := in.HoursPerDay
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < minHoursPerDay {
		hours = minHoursPerDay
	}

	idleFraction := clamp(in.IdlePercent, 0, maxIdlePercent) / 100

	var dailyTarget float64
	if days > 0 {
		dailyTarget = goal / days
	}

	effectiveHours := math.Max(minHoursPerDay, hours*(1-idleFraction))
	activeRate := dailyTarget / effectiveHours

	brackets := make([]model.BracketRow, 0, len(planBrackets))
	for _, b := range planBrackets {
		var minPerRide float64
		if b.rides > 0 {
			minPerRide = dailyTarget / float64(b.rides)
		}
		var maxMiles float64
		if b.perMileFloor > 0 {
			maxMiles = minPerRide / b.perMileFloor
		}
		brackets = append(brackets, model.BracketRow{
			Label:        b.label,
			Rides:        b.rides,
			PerMileFloor: b.perMileFloor,
			MinPerRide:   minPerRide,
			MaxMiles:     maxMiles,
		})
	}

	return model.PlannerResult{
		DailyTarget:          dailyTarget,
		EffectiveHours:       effectiveHours,
		DollarsPerHourAllIn:  dailyTarget / hours,
		DollarsPerHourActive: activeRate,
		PerMinuteActive:      activeRate / 60,
		Brackets:             brackets,
	}
}
