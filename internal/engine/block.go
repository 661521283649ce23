package engine

import (
	"errors"

	"alcyxob/oly-planner/internal/domain"
)

// ErrInvalidMaxes indicates a profile missing one of the four required main
// lift maxes, or carrying one outside the accepted range.
var ErrInvalidMaxes = errors.New("all four main lift maxes (snatch, clean & jerk, front squat, back squat) must be between 1 and 999")

// NewGenerator builds a generator for one block run. Recent day logs feed the
// fatigue evaluation exactly once; every week of the block sees the same
// fatigue state.
func NewGenerator(p *domain.Profile, seed int64, recentLogs []domain.DayLog) *Generator {
	flags := ComplexFatigueFlags(recentLogs)
	return &Generator{
		Profile:  p,
		Seed:     seed,
		Fatigued: flags.Fatigued(p.LatestReadiness()),
	}
}

// ClampBlockLength bounds a block to the supported 4-12 week range, with 8 as
// the fallback for unset values.
func ClampBlockLength(weeks int) int {
	if weeks <= 0 {
		return 8
	}
	if weeks < 4 {
		return 4
	}
	if weeks > 12 {
		return 12
	}
	return weeks
}

// BuildWeeks generates every week of the block.
func (g *Generator) BuildWeeks() []domain.WeekPlan {
	length := ClampBlockLength(g.Profile.BlockLength)
	weeks := make([]domain.WeekPlan, 0, length)
	for w := 0; w < length; w++ {
		weeks = append(weeks, g.WeekPlan(w))
	}
	return weeks
}

// BlockARI computes the block's average relative intensity: the rep-weighted
// mean prescribed percentage across all main-lift work. Accessories and
// percentage-less entries are excluded.
func BlockARI(weeks []domain.WeekPlan) float64 {
	mainLifts := map[domain.LiftKey]bool{
		domain.LiftSnatch:     true,
		domain.LiftCleanJerk:  true,
		domain.LiftBackSquat:  true,
		domain.LiftFrontSquat: true,
	}
	var weightedPct float64
	var repSum int
	for _, week := range weeks {
		for _, day := range week.Days {
			for _, ex := range day.Work {
				if !mainLifts[ex.LiftKey] || ex.Pct == 0 || ex.Reps == 0 || ex.Sets == 0 {
					continue
				}
				total := ex.Sets * ex.Reps
				if total <= 0 {
					continue
				}
				repSum += total
				weightedPct += ex.Pct * float64(total)
			}
		}
	}
	if repSum == 0 {
		return 0
	}
	return weightedPct / float64(repSum)
}

// KValue derives the training-load index from a block's ARI. Zero without a
// positive two-lift total or a computed ARI.
func KValue(ari, twoLiftTotal float64) float64 {
	if twoLiftTotal <= 0 || ari == 0 {
		return 0
	}
	return ari * 100
}

// ValidateMaxes checks the four required main-lift maxes are present and
// sane. Values are bounded to 0-999 before checking so a wild entry reads as
// out of range rather than crashing downstream math.
func ValidateMaxes(m domain.Maxes) error {
	for _, v := range []float64{m.Snatch, m.CleanJerk, m.FrontSquat, m.BackSquat} {
		if v <= 0 || v > 999 {
			return ErrInvalidMaxes
		}
	}
	return nil
}
