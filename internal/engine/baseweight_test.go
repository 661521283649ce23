package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/oly-planner/internal/domain"
)

func TestBaseForExerciseVariationRatios(t *testing.T) {
	p := testProfile() // snatch 100, cj 120

	tests := []struct {
		name string
		ex   string
		key  domain.LiftKey
		want float64
	}{
		{"competition snatch uses true max", "Snatch", domain.LiftSnatch, 100},
		{"power snatch 88%", "Power Snatch", domain.LiftSnatch, 88},
		{"power clean 90%", "Power Clean", domain.LiftCleanJerk, 108},
		{"overhead squat 85%", "Overhead Squat (pause)", domain.LiftSnatch, 85},
		{"hang snatch 95%", "Hang Snatch (knee)", domain.LiftSnatch, 95},
		{"hang power snatch 80%", "Hang Power Snatch", domain.LiftSnatch, 80},
		{"hang clean 95%", "Hang Clean (knee)", domain.LiftCleanJerk, 114},
		{"back squat unscaled", "Back Squat", domain.LiftBackSquat, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BaseForExercise(tt.ex, tt.key, p), 1e-9)
		})
	}
}

func TestBaseForExerciseCustomMax(t *testing.T) {
	p := testProfile()
	p.Maxes.PowerSnatch = ptrFloat(85)

	assert.InDelta(t, 85, BaseForExercise("Power Snatch", domain.LiftSnatch, p), 1e-9)

	// Zero custom value falls back to the ratio.
	p.Maxes.PowerSnatch = ptrFloat(0)
	assert.InDelta(t, 88, BaseForExercise("Power Snatch", domain.LiftSnatch, p), 1e-9)
}

func TestBaseForExerciseComplex(t *testing.T) {
	p := testProfile()
	p.Maxes.PowerSnatch = ptrFloat(85)

	// Complexes ignore custom variation maxes and key off the primary lift's
	// true max with a 5% reduction.
	assert.InDelta(t, 95, BaseForExercise("Power Snatch + Snatch", domain.LiftSnatch, p), 1e-9)
	assert.InDelta(t, 114, BaseForExercise("Clean + Front Squat + Jerk", domain.LiftCleanJerk, p), 1e-9)
}

func TestBaseForExerciseAdjustmentBias(t *testing.T) {
	p := testProfile()
	p.LiftAdjustments = map[domain.LiftKey]float64{domain.LiftSnatch: 0.05}
	assert.InDelta(t, 105, BaseForExercise("Snatch", domain.LiftSnatch, p), 1e-9)

	// Stored values beyond the band are clamped on read.
	p.LiftAdjustments[domain.LiftSnatch] = 0.2
	assert.InDelta(t, 105, BaseForExercise("Snatch", domain.LiftSnatch, p), 1e-9)
	p.LiftAdjustments[domain.LiftSnatch] = -0.2
	assert.InDelta(t, 95, BaseForExercise("Snatch", domain.LiftSnatch, p), 1e-9)
}

func TestBaseForExercisePressEstimation(t *testing.T) {
	p := testProfile()
	p.Maxes.PushPress = 0
	p.Maxes.StrictPress = 0

	// Missing press maxes estimate from clean & jerk: 70% and 55%.
	assert.InDelta(t, 84, BaseForExercise("Push Press", domain.LiftPushPress, p), 1e-9)
	assert.InDelta(t, 66, BaseForExercise("Strict Press", domain.LiftStrictPress, p), 1e-9)

	// An entered max wins over the estimate.
	p.Maxes.PushPress = 80
	assert.InDelta(t, 80, BaseForExercise("Push Press", domain.LiftPushPress, p), 1e-9)
}

func TestAdjustedWorkingMax(t *testing.T) {
	p := testProfile()

	assert.InDelta(t, 90, AdjustedWorkingMax(p, domain.LiftSnatch), 1e-9)

	p.LiftAdjustments = map[domain.LiftKey]float64{domain.LiftSnatch: 0.02}
	assert.InDelta(t, 91.8, AdjustedWorkingMax(p, domain.LiftSnatch), 1e-9)

	// Press estimation applies at the working max level too.
	p.WorkingMaxes.PushPress = 0
	assert.InDelta(t, 76, AdjustedWorkingMax(p, domain.LiftPushPress), 1e-9)
}

func TestWorkingMaxesDerivation(t *testing.T) {
	m := domain.Maxes{Snatch: 101, CleanJerk: 120, FrontSquat: 141, BackSquat: 160}
	wm := m.WorkingMaxes()
	assert.Equal(t, 91.0, wm.Snatch) // rounded
	assert.Equal(t, 108.0, wm.CleanJerk)
	assert.Equal(t, 127.0, wm.FrontSquat)
	assert.Equal(t, 144.0, wm.BackSquat)
}
