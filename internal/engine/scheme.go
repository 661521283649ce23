package engine

import (
	"regexp"

	"alcyxob/oly-planner/internal/domain"
)

var barbellMainRe = regexp.MustCompile(`(?i)snatch|clean|jerk|squat|pull`)

// BuildSetScheme expands a prescription into the concrete set list the
// athlete sees: a warm-up ladder for percentage-based barbell work, then the
// prescribed work sets. Weights are rounded to the nearest unit.
func BuildSetScheme(ex domain.Prescription, key domain.LiftKey, p *domain.Profile) []domain.SetTarget {
	targetPct := ex.Pct
	if targetPct == 0 {
		targetPct = ex.RecommendedPct
	}
	var base float64
	if key != "" {
		base = BaseForExercise(ex.Name, key, p)
	}

	var sets []domain.SetTarget
	push := func(pct float64, reps int, tag string) {
		w := 0.0
		if base > 0 && pct > 0 {
			w = roundTo(base*pct, 1)
		}
		sets = append(sets, domain.SetTarget{TargetPct: pct, TargetReps: reps, Tag: tag, TargetWeight: w})
	}

	if targetPct > 0 && key != "" && barbellMainRe.MatchString(ex.Name) {
		for _, pct := range []float64{0.40, 0.50, 0.60, 0.70} {
			if pct >= targetPct-0.02 {
				continue
			}
			reps := ex.Reps
			if reps > 3 {
				reps = 3
			}
			if reps < 1 {
				reps = 1
			}
			push(pct, reps, domain.SetTagWarmup)
		}
	}
	for i := 0; i < ex.Sets; i++ {
		push(targetPct, ex.Reps, domain.SetTagWork)
	}
	return sets
}

// ActionDelta is the within-session weight adjustment one logged action
// carries forward into subsequent sets of the same exercise.
func ActionDelta(action domain.SetAction) float64 {
	switch action {
	case domain.ActionMake:
		return 0.01
	case domain.ActionHeavy:
		return -0.02
	case domain.ActionMiss:
		return -0.05
	}
	return 0
}

// CumulativeAdjustment sums the athlete's manual weight offset for an
// exercise with the action deltas of every completed work set before the
// given set. Warm-up sets never contribute.
func CumulativeAdjustment(log *domain.DayLog, exIndex, setIndex int, scheme []domain.SetTarget) float64 {
	d := 0.0
	if log != nil {
		d = log.WeightOffsetOverride(exIndex)
	}
	for i := 0; i < setIndex && i < len(scheme); i++ {
		if scheme[i].Tag != domain.SetTagWork {
			continue
		}
		if log == nil {
			continue
		}
		if rec := log.Entry(exIndex, i); rec != nil && rec.Action != "" {
			d += ActionDelta(rec.Action)
		}
	}
	return d
}

// AdjustedSetWeight applies the cumulative adjustment to one set's target.
func AdjustedSetWeight(target domain.SetTarget, adj float64) float64 {
	if target.TargetWeight == 0 {
		return 0
	}
	return roundTo(target.TargetWeight*(1+adj), 1)
}
