package engine

import (
	"alcyxob/oly-planner/internal/domain"
)

// feedbackAdj converts the final work set's action into a persistent bias
// contribution. An order of magnitude smaller than the within-session deltas
// so the long-term signal moves slowly.
func feedbackAdj(action domain.SetAction) float64 {
	switch action {
	case domain.ActionMake:
		return 0.0025
	case domain.ActionBelt:
		return 0.0010
	case domain.ActionHeavy:
		return -0.0015
	case domain.ActionMiss:
		return -0.0050
	}
	return 0
}

// DayFeedback computes per-lift adjustment deltas from a completed session.
// Each percentage-based exercise contributes the action bias of its last work
// set plus a damped performed-versus-prescribed weight ratio. Deltas for the
// same lift accumulate; the caller folds them into the profile's clamped
// adjustments.
func DayFeedback(day domain.DayPlan, log *domain.DayLog, p *domain.Profile) map[domain.LiftKey]float64 {
	deltas := make(map[domain.LiftKey]float64)
	for exIndex, ex := range day.Work {
		key := ex.LiftKey
		if key == "" {
			key = day.LiftKey
		}
		if key == "" || ex.Pct == 0 {
			continue
		}

		eff := ex
		if log != nil {
			eff.Sets = log.WorkSetsOverride(exIndex, ex.Sets)
		}
		scheme := BuildSetScheme(eff, key, p)
		lastWork := -1
		for i := len(scheme) - 1; i >= 0; i-- {
			if scheme[i].Tag == domain.SetTagWork {
				lastWork = i
				break
			}
		}
		if lastWork < 0 {
			continue
		}

		var rec *domain.SetLogEntry
		if log != nil {
			rec = log.Entry(exIndex, lastWork)
		}
		var action domain.SetAction
		performed := 0.0
		if rec != nil {
			action = rec.Action
			performed = rec.Weight
		}

		adj := CumulativeAdjustment(log, exIndex, lastWork, scheme)
		prescribed := 0.0
		if scheme[lastWork].TargetWeight > 0 {
			prescribed = roundTo(scheme[lastWork].TargetWeight*(1+adj), 1)
		}

		d := feedbackAdj(action)
		if performed > 0 && prescribed > 0 {
			ratio := performed/prescribed - 1
			d += 0.25 * clamp(ratio, -0.02, 0.02)
		}
		deltas[key] += d
	}
	return deltas
}

// ApplyFeedback folds session deltas into the profile's persistent lift
// adjustments, keeping each within the +-5% band.
func ApplyFeedback(p *domain.Profile, deltas map[domain.LiftKey]float64) {
	if len(deltas) == 0 {
		return
	}
	if p.LiftAdjustments == nil {
		p.LiftAdjustments = make(map[domain.LiftKey]float64, len(deltas))
	}
	for key, d := range deltas {
		p.LiftAdjustments[key] = clamp(p.LiftAdjustments[key]+d, -0.05, 0.05)
	}
}
