package engine

import (
	"alcyxob/oly-planner/internal/domain"
)

// FatigueFlags summarizes recent complex-set performance.
type FatigueFlags struct {
	HighRPECount    int
	MissCount       int
	ComplexSetCount int
	Score           float64
}

// ComplexFatigueFlags scans logged sets for strain markers on complex
// exercises: RPE 9+ counts once, a miss counts double. Score is the weighted
// count over all complex sets, 0 when none are logged.
func ComplexFatigueFlags(logs []domain.DayLog) FatigueFlags {
	var f FatigueFlags
	for i := range logs {
		for _, rec := range logs[i].Entries {
			if !IsComplex(rec.ExerciseName) {
				continue
			}
			f.ComplexSetCount++
			if rec.RPE >= 9 {
				f.HighRPECount++
			}
			if rec.Action == domain.ActionMiss {
				f.MissCount++
			}
		}
	}
	if f.ComplexSetCount > 0 {
		f.Score = float64(f.HighRPECount+2*f.MissCount) / float64(f.ComplexSetCount)
	}
	return f
}

// Fatigued applies the recovery thresholds: low readiness, accumulated
// high-RPE sets, accumulated misses, or a fatigue score past 30%.
func (f FatigueFlags) Fatigued(latestReadiness float64) bool {
	return latestReadiness <= 2 ||
		f.HighRPECount >= 10 ||
		f.MissCount >= 5 ||
		f.Score >= 0.3
}
