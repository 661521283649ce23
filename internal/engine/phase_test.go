package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/oly-planner/internal/domain"
)

func TestPhaseForWeek(t *testing.T) {
	tests := []struct {
		week int
		want domain.Phase
	}{
		{0, domain.PhaseAccumulation},
		{1, domain.PhaseAccumulation},
		{2, domain.PhaseIntensification},
		{3, domain.PhaseDeload},
		{4, domain.PhaseAccumulation},
		{7, domain.PhaseDeload},
		{10, domain.PhaseIntensification},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseForWeek(tt.week), "week %d", tt.week)
	}
}

func TestMicroIntensityGeneral(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramGeneral
	p.BlockLength = 8

	assert.InDelta(t, 0.70, MicroIntensity(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 0.80, MicroIntensity(p, domain.PhaseAccumulation, 7), 1e-9)
	assert.InDelta(t, 0.78, MicroIntensity(p, domain.PhaseIntensification, 0), 1e-9)
	assert.InDelta(t, 0.60, MicroIntensity(p, domain.PhaseDeload, 5), 1e-9)
}

func TestMicroIntensityProgramCurves(t *testing.T) {
	p := testProfile()
	p.BlockLength = 8
	lastWeek := 7

	p.ProgramType = domain.ProgramCompetition
	assert.InDelta(t, 0.70, MicroIntensity(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 0.95, MicroIntensity(p, domain.PhaseAccumulation, lastWeek), 1e-9)

	p.ProgramType = domain.ProgramMaxStrength
	assert.InDelta(t, 0.80, MicroIntensity(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 0.95, MicroIntensity(p, domain.PhaseAccumulation, lastWeek), 1e-9)

	p.ProgramType = domain.ProgramPowerbuilding
	assert.InDelta(t, 0.83, MicroIntensity(p, domain.PhaseAccumulation, lastWeek), 1e-9)

	p.ProgramType = domain.ProgramHypertrophy
	assert.InDelta(t, 0.68, MicroIntensity(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 0.80, MicroIntensity(p, domain.PhaseAccumulation, lastWeek), 1e-9)
}

func TestMicroIntensityTrainingAgeCap(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramMaxStrength
	p.BlockLength = 8

	tests := []struct {
		age  float64
		want float64
	}{
		{0.5, 0.75},
		{1.5, 0.85},
		{2.5, 0.90},
		{5, 0.95}, // no age cap, absolute cap only
	}
	for _, tt := range tests {
		p.TrainingAge = tt.age
		assert.InDelta(t, tt.want, MicroIntensity(p, domain.PhaseAccumulation, 7), 1e-9, "training age %.1f", tt.age)
	}
}

func TestMicroIntensityAdaptsToBlockLength(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramCompetition

	p.BlockLength = 4
	short := MicroIntensity(p, domain.PhaseAccumulation, 3)
	p.BlockLength = 12
	long := MicroIntensity(p, domain.PhaseAccumulation, 11)

	// Both block lengths peak at the same intensity on their final week.
	assert.InDelta(t, short, long, 1e-9)
	assert.InDelta(t, 0.95, short, 1e-9)
}

func TestVolumeFactor(t *testing.T) {
	p := testProfile()
	p.VolumePref = domain.VolumeStandard

	assert.InDelta(t, 1.0, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 0.85, VolumeFactor(p, domain.PhaseIntensification, 0), 1e-9)
	assert.InDelta(t, 0.6, VolumeFactor(p, domain.PhaseDeload, 0), 1e-9)

	p.VolumePref = domain.VolumeMinimal
	assert.InDelta(t, 0.6, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
	p.VolumePref = domain.VolumeReduced
	assert.InDelta(t, 0.8, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
}

func TestVolumeFactorMastersReduction(t *testing.T) {
	p := testProfile()
	p.VolumePref = domain.VolumeStandard

	age := 45
	p.Age = &age
	assert.InDelta(t, 0.90, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
	age = 55
	assert.InDelta(t, 0.85, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
}

func TestVolumeFactorWaveBump(t *testing.T) {
	p := testProfile()
	p.VolumePref = domain.VolumeStandard

	assert.InDelta(t, 1.00, VolumeFactor(p, domain.PhaseAccumulation, 0), 1e-9)
	assert.InDelta(t, 1.05, VolumeFactor(p, domain.PhaseAccumulation, 4), 1e-9)
	assert.InDelta(t, 1.10, VolumeFactor(p, domain.PhaseAccumulation, 8), 1e-9)
	// Capped at +15% no matter how long the block runs.
	assert.InDelta(t, 1.15, VolumeFactor(p, domain.PhaseAccumulation, 16), 1e-9)
}

func TestTransitionMultiplier(t *testing.T) {
	p := testProfile()
	p.TransitionWeeks = 0
	i, v := TransitionMultiplier(p, 0)
	assert.Equal(t, 1.0, i)
	assert.Equal(t, 1.0, v)

	p.TransitionWeeks = 2
	p.TransitionProfile = domain.TransitionStandard
	i, v = TransitionMultiplier(p, 0)
	assert.InDelta(t, 0.925, i, 1e-9)
	assert.InDelta(t, 0.90, v, 1e-9)
	i, v = TransitionMultiplier(p, 1)
	assert.InDelta(t, 1.0, i, 1e-9)
	assert.InDelta(t, 1.0, v, 1e-9)

	// Past the transition window there is no scaling.
	i, v = TransitionMultiplier(p, 2)
	assert.Equal(t, 1.0, i)
	assert.Equal(t, 1.0, v)
}

func TestTransitionMultiplierProfiles(t *testing.T) {
	p := testProfile()
	p.TransitionWeeks = 4

	p.TransitionProfile = domain.TransitionConservative
	i, v := TransitionMultiplier(p, 0)
	assert.InDelta(t, 0.80+0.20*0.25, i, 1e-9)
	assert.InDelta(t, 0.70+0.30*0.25, v, 1e-9)

	p.TransitionProfile = domain.TransitionAggressive
	i, v = TransitionMultiplier(p, 0)
	assert.InDelta(t, 0.90+0.10*0.25, i, 1e-9)
	assert.InDelta(t, 0.90+0.10*0.25, v, 1e-9)
}

func TestPullOffset(t *testing.T) {
	assert.Equal(t, 0.05, PullOffset(domain.PhaseAccumulation, true))
	assert.Equal(t, 0.08, PullOffset(domain.PhaseAccumulation, false))
	assert.Equal(t, 0.10, PullOffset(domain.PhaseIntensification, true))
	assert.Equal(t, 0.15, PullOffset(domain.PhaseIntensification, false))
	assert.Equal(t, 0.08, PullOffset(domain.PhaseDeload, true))
	assert.Equal(t, 0.10, PullOffset(domain.PhaseDeload, false))
}
