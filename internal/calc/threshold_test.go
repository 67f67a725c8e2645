package calc

import (
	"math"
	"testing"

	"github.com/fareline/fareline/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name         string
		wantBinding  model.Binding
		wantCombined model.Decision
		in           model.ThresholdInput
		wantByTime   float64
		wantByMiles  float64
		wantMin      float64
	}{
		{
			name: "miles bind and offer clears",
			in: model.ThresholdInput{
				Minutes:        12,
				Miles:          5,
				Offer:          9,
				PerMinuteFloor: 0.6,
				PerMileFloor:   1.7,
			},
			wantByTime:   7.20,
			wantByMiles:  8.50,
			wantMin:      8.50,
			wantBinding:  model.BindingMiles,
			wantCombined: model.DecisionAccept,
		},
		{
			name: "time binds and offer falls short",
			in: model.ThresholdInput{
				Minutes:        15,
				Miles:          5,
				Offer:          8.9,
				PerMinuteFloor: 0.6,
				PerMileFloor:   1.7,
			},
			wantByTime:   9.00,
			wantByMiles:  8.50,
			wantMin:      9.00,
			wantBinding:  model.BindingTime,
			wantCombined: model.DecisionReject,
		},
		{
			name: "offer exactly at the minimum accepts",
			in: model.ThresholdInput{
				Minutes:        15,
				Miles:          5,
				Offer:          9.0,
				PerMinuteFloor: 0.6,
				PerMileFloor:   1.7,
			},
			wantByTime:   9.00,
			wantByMiles:  8.50,
			wantMin:      9.00,
			wantBinding:  model.BindingTime,
			wantCombined: model.DecisionAccept,
		},
		{
			name: "equal minimums bind on time",
			in: model.ThresholdInput{
				Minutes:        10,
				Miles:          10,
				Offer:          5,
				PerMinuteFloor: 0.5,
				PerMileFloor:   0.5,
			},
			wantByTime:   5.00,
			wantByMiles:  5.00,
			wantMin:      5.00,
			wantBinding:  model.BindingTime,
			wantCombined: model.DecisionAccept,
		},
		{
			name:         "all zero inputs accept at zero",
			in:           model.ThresholdInput{},
			wantByTime:   0,
			wantByMiles:  0,
			wantMin:      0,
			wantBinding:  model.BindingTime,
			wantCombined: model.DecisionAccept,
		},
		{
			name: "malformed inputs degrade to zero",
			in: model.ThresholdInput{
				Minutes:        math.NaN(),
				Miles:          math.Inf(1),
				Offer:          -4,
				PerMinuteFloor: 0.6,
				PerMileFloor:   1.7,
			},
			wantByTime:   0,
			wantByMiles:  0,
			wantMin:      0,
			wantBinding:  model.BindingTime,
			wantCombined: model.DecisionAccept,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Threshold(test.in)

			assert.InDelta(t, test.wantByTime, got.MinByTime, 1e-9)
			assert.InDelta(t, test.wantByMiles, got.MinByMiles, 1e-9)
			assert.InDelta(t, test.wantMin, got.MinCombined, 1e-9)
			assert.Equal(t, test.wantBinding, got.Binding)
			assert.Equal(t, test.wantCombined, got.CombinedDecision)
		})
	}
}

func TestThreshold_PerCheckDecisions(t *testing.T) {
	got := Threshold(model.ThresholdInput{
		Minutes:        12,
		Miles:          5,
		Offer:          8,
		PerMinuteFloor: 0.6,
		PerMileFloor:   1.7,
	})

	// Offer of $8 clears the $7.20 time minimum but not the $8.50
	// miles minimum.
	assert.Equal(t, model.DecisionAccept, got.TimeDecision)
	assert.Equal(t, model.DecisionReject, got.MilesDecision)
	assert.Equal(t, model.DecisionReject, got.CombinedDecision)
	assert.False(t, got.Accepted())
}

func TestThreshold_MinimumNeverBelowExactProduct(t *testing.T) {
	inputs := []struct {
		minutes float64
		floor   float64
	}{
		{1, 0.01},
		{7, 0.55},
		{12, 0.6},
		{33, 0.47},
		{90, 1.25},
		{0.5, 0.99},
	}

	for _, in := range inputs {
		got := Threshold(model.ThresholdInput{Minutes: in.minutes, PerMinuteFloor: in.floor})

		exact := in.minutes * in.floor
		assert.GreaterOrEqual(t, got.MinByTime, exact)
		assert.InDelta(t, math.Ceil(exact*100)/100, got.MinByTime, 1e-12)
	}
}

func TestCeilCents(t *testing.T) {
	assert.InDelta(t, 7.20, CeilCents(7.2), 1e-12)
	assert.InDelta(t, 7.21, CeilCents(7.201), 1e-12)
	assert.InDelta(t, 0.01, CeilCents(0.0001), 1e-12)
	assert.Zero(t, CeilCents(0))
	assert.Zero(t, CeilCents(-3))
	assert.Zero(t, CeilCents(math.NaN()))
	assert.Zero(t, CeilCents(math.Inf(1)))
}
