// Package config defines the viper keys and defaults for the driver's
// saved floors, goals, and schedule. Commands bind their flags to
// these keys, so precedence is flag > environment > config file >
// default.
package config

import "github.com/spf13/viper"

// Viper keys for personal defaults.
const (
	KeyPerMinuteFloor = "floors.per_minute"
	KeyPerMileFloor   = "floors.per_mile"
	KeyMonthlyGoal    = "plan.goal"
	KeyDaysInMonth    = "plan.days"
	KeyHoursPerDay    = "plan.hours"
	KeyIdlePercent    = "plan.idle"
)

// SetDefaults registers fallback values for every personal setting.
// The floors match a conservative urban market; the schedule is a
// six-hour day over a full month with 30% idle time.
func SetDefaults() {
	viper.SetDefault(KeyPerMinuteFloor, 0.60)
	viper.SetDefault(KeyPerMileFloor, 1.70)
	viper.SetDefault(KeyMonthlyGoal, 1600.0)
	viper.SetDefault(KeyDaysInMonth, 30.0)
	viper.SetDefault(KeyHoursPerDay, 6.0)
	viper.SetDefault(KeyIdlePercent, 30.0)
}

// PerMinuteFloor returns the driver's dollars-per-minute floor.
func PerMinuteFloor() float64 {
	return viper.GetFloat64(KeyPerMinuteFloor)
}

// PerMileFloor returns the driver's dollars-per-mile floor.
func PerMileFloor() float64 {
	return viper.GetFloat64(KeyPerMileFloor)
}

// MonthlyGoal returns the saved monthly earnings goal.
func MonthlyGoal() float64 {
	return viper.GetFloat64(KeyMonthlyGoal)
}

// DaysInMonth returns the saved working-days count.
func DaysInMonth() float64 {
	return viper.GetFloat64(KeyDaysInMonth)
}

// HoursPerDay returns the saved daily on-app hours.
func HoursPerDay() float64 {
	return viper.GetFloat64(KeyHoursPerDay)
}

// IdlePercent returns the saved idle-time percentage.
func IdlePercent() float64 {
	return viper.GetFloat64(KeyIdlePercent)
}
