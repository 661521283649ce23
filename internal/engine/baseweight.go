package engine

import (
	"strings"

	"alcyxob/oly-planner/internal/domain"
)

// variation ratios applied to the primary lift's true max when no custom 1RM
// is stored. Order matters: "hang power snatch" must match before the plain
// hang variants.
func variationRatio(nameLower string) float64 {
	switch {
	case strings.Contains(nameLower, "hang power snatch"):
		return 0.80
	case strings.Contains(nameLower, "power snatch"):
		return 0.88
	case strings.Contains(nameLower, "power clean"):
		return 0.90
	case strings.Contains(nameLower, "overhead squat"):
		return 0.85
	case strings.Contains(nameLower, "hang snatch"):
		return 0.95
	case strings.Contains(nameLower, "hang clean"):
		return 0.95
	}
	return 1.0
}

func customMax(m domain.Maxes, nameLower string) *float64 {
	switch {
	case strings.Contains(nameLower, "hang power snatch"):
		return m.HangPowerSnatch
	case strings.Contains(nameLower, "power snatch"):
		return m.PowerSnatch
	case strings.Contains(nameLower, "power clean"):
		return m.PowerClean
	case strings.Contains(nameLower, "overhead squat"):
		return m.OverheadSquat
	case strings.Contains(nameLower, "hang snatch"):
		return m.HangSnatch
	case strings.Contains(nameLower, "hang clean"):
		return m.HangClean
	}
	return nil
}

// AdjustedWorkingMax returns the 90% working max for a lift with the
// athlete's persistent bias applied. Press maxes missing from the profile are
// estimated from clean & jerk (push press ~70%, strict press ~55%).
func AdjustedWorkingMax(p *domain.Profile, key domain.LiftKey) float64 {
	base := p.WorkingMaxes.Of(key)
	if base == 0 && (key == domain.LiftPushPress || key == domain.LiftStrictPress) {
		if cj := p.WorkingMaxes.Of(domain.LiftCleanJerk); cj > 0 {
			ratio := 0.55
			if key == domain.LiftPushPress {
				ratio = 0.70
			}
			base = roundTo(cj*ratio, 1)
		}
	}
	return base * (1 + p.Adjustment(key))
}

// BaseForExercise resolves the reference weight an exercise's percentages run
// off. Everything derives from the true max of the governing lift: a custom
// 1RM when the athlete entered one for the variation, otherwise true max
// scaled by the variation ratio. Complexes always key off the primary lift's
// true max (the hardest component limits the sequence) and carry a flat 5%
// reduction for cumulative fatigue.
func BaseForExercise(name string, key domain.LiftKey, p *domain.Profile) float64 {
	base := baseBeforeComplexReduction(name, key, p)
	if IsComplex(name) {
		return base * 0.95
	}
	return base
}

func baseBeforeComplexReduction(name string, key domain.LiftKey, p *domain.Profile) float64 {
	nameLower := strings.ToLower(name)
	adj := 1 + p.Adjustment(key)

	if !IsComplex(name) {
		if custom := customMax(p.Maxes, nameLower); custom != nil && *custom > 0 {
			return *custom * adj
		}
	}

	trueMax := p.Maxes.Of(key)
	if trueMax == 0 && (key == domain.LiftPushPress || key == domain.LiftStrictPress) {
		if cj := p.Maxes.Of(domain.LiftCleanJerk); cj > 0 {
			ratio := 0.55
			if key == domain.LiftPushPress {
				ratio = 0.70
			}
			trueMax = roundTo(cj*ratio, 1)
		}
	}

	ratio := 1.0
	if !IsComplex(name) {
		ratio = variationRatio(nameLower)
	}
	return trueMax * ratio * adj
}
