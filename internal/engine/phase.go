package engine

import (
	"math"

	"alcyxob/oly-planner/internal/domain"
)

// PhaseForWeek maps a zero-based week index onto the repeating 4-week
// mesocycle: two accumulation weeks, one intensification, one deload.
func PhaseForWeek(weekIndex int) domain.Phase {
	switch weekIndex % 4 {
	case 0, 1:
		return domain.PhaseAccumulation
	case 2:
		return domain.PhaseIntensification
	default:
		return domain.PhaseDeload
	}
}

// MicroIntensity computes the base intensity for a week before transition
// scaling. Curves adapt to block length so an 8-week and a 12-week block
// reach the same peak, just at different slopes.
func MicroIntensity(p *domain.Profile, phase domain.Phase, weekIndex int) float64 {
	blockLength := p.BlockLength
	if blockLength <= 0 {
		blockLength = 8
	}
	ratio := 0.0
	if blockLength > 1 {
		ratio = float64(weekIndex) / float64(blockLength-1)
	}

	// Newer lifters get a hard ceiling regardless of program.
	ageCap := 1.00
	switch {
	case p.TrainingAge < 1:
		ageCap = 0.75
	case p.TrainingAge < 2:
		ageCap = 0.85
	case p.TrainingAge < 3:
		ageCap = 0.90
	}

	var intensity float64
	switch p.ProgramType {
	case domain.ProgramCompetition:
		// 70% to 95%, eased so the ramp back-loads toward the peak.
		intensity = 0.70 + 0.25*math.Pow(ratio, 0.8)
	case domain.ProgramMaxStrength:
		intensity = 0.80 + 0.15*ratio
	case domain.ProgramPowerbuilding:
		intensity = 0.70 + 0.13*ratio
	case domain.ProgramHypertrophy:
		intensity = 0.68 + 0.12*ratio
	default:
		switch phase {
		case domain.PhaseAccumulation:
			intensity = 0.70 + 0.10*ratio
		case domain.PhaseIntensification:
			intensity = 0.78 + 0.10*ratio
		default:
			intensity = 0.60
		}
	}

	intensity = math.Min(intensity, ageCap)
	return math.Min(intensity, 0.95)
}

// VolumeFactor computes the set-count multiplier for a week before transition
// scaling: volume preference x phase x masters age reduction x wave bump.
func VolumeFactor(p *domain.Profile, phase domain.Phase, weekIndex int) float64 {
	base := 0.8
	switch p.VolumePref {
	case domain.VolumeStandard:
		base = 1.0
	case domain.VolumeMinimal:
		base = 0.6
	}

	phaseMult := 1.0
	switch phase {
	case domain.PhaseIntensification:
		phaseMult = 0.85
	case domain.PhaseDeload:
		phaseMult = 0.6
	}

	// Masters volume reduction.
	ageMult := 1.0
	if p.Age != nil {
		switch {
		case *p.Age >= 50:
			ageMult = 0.85
		case *p.Age >= 40:
			ageMult = 0.90
		}
	}

	// +5% per completed 4-week wave, capped at +15%.
	wave := float64(weekIndex / 4)
	waveMult := math.Min(1+wave*0.05, 1.15)

	return base * phaseMult * ageMult * waveMult
}

// TransitionMultiplier ramps intensity and volume up from a floor across the
// configured transition weeks after a layoff. Outside the window both
// multipliers are 1.
func TransitionMultiplier(p *domain.Profile, weekIndex int) (intensity, volume float64) {
	tw := p.TransitionWeeks
	if tw <= 0 || weekIndex >= tw {
		return 1, 1
	}
	minI, minV := 0.85, 0.80
	switch p.TransitionProfile {
	case domain.TransitionConservative:
		minI, minV = 0.80, 0.70
	case domain.TransitionAggressive:
		minI, minV = 0.90, 0.90
	}
	t := float64(weekIndex+1) / float64(tw)
	return minI + (1-minI)*t, minV + (1-minV)*t
}

// PullOffset returns how far above the week's base intensity pulls are
// loaded. Snatch pulls run lighter than clean pulls.
func PullOffset(phase domain.Phase, snatchPull bool) float64 {
	switch phase {
	case domain.PhaseAccumulation:
		if snatchPull {
			return 0.05
		}
		return 0.08
	case domain.PhaseIntensification:
		if snatchPull {
			return 0.10
		}
		return 0.15
	}
	if snatchPull {
		return 0.08
	}
	return 0.10
}
