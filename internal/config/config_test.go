package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	assert.InDelta(t, 0.60, PerMinuteFloor(), 1e-12)
	assert.InDelta(t, 1.70, PerMileFloor(), 1e-12)
	assert.InDelta(t, 1600, MonthlyGoal(), 1e-12)
	assert.InDelta(t, 30, DaysInMonth(), 1e-12)
	assert.InDelta(t, 6, HoursPerDay(), 1e-12)
	assert.InDelta(t, 30, IdlePercent(), 1e-12)
}

func TestOverridesWinOverDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set(KeyPerMinuteFloor, 0.75)
	viper.Set(KeyIdlePercent, 45.0)

	assert.InDelta(t, 0.75, PerMinuteFloor(), 1e-12)
	assert.InDelta(t, 45, IdlePercent(), 1e-12)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 1.70, PerMileFloor(), 1e-12)
}
