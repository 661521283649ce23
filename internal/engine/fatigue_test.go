package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/oly-planner/internal/domain"
)

func complexSetLogs(highRPE, misses, clean int) []domain.DayLog {
	var log domain.DayLog
	idx := 0
	add := func(rpe float64, action domain.SetAction, n int) {
		for i := 0; i < n; i++ {
			log.Entries = append(log.Entries, domain.SetLogEntry{
				ExerciseIndex: 0, SetIndex: idx,
				ExerciseName: "Snatch Pull + Snatch",
				RPE:          rpe, Action: action,
			})
			idx++
		}
	}
	add(9.5, "", highRPE)
	add(7, domain.ActionMiss, misses)
	add(7, domain.ActionMake, clean)
	return []domain.DayLog{log}
}

func TestComplexFatigueFlags(t *testing.T) {
	f := ComplexFatigueFlags(complexSetLogs(2, 1, 7))
	assert.Equal(t, 2, f.HighRPECount)
	assert.Equal(t, 1, f.MissCount)
	assert.Equal(t, 10, f.ComplexSetCount)
	assert.InDelta(t, 0.4, f.Score, 1e-9) // (2 + 2*1) / 10
}

func TestComplexFatigueFlagsIgnoresSingles(t *testing.T) {
	logs := []domain.DayLog{{
		Entries: []domain.SetLogEntry{
			{ExerciseIndex: 0, SetIndex: 0, ExerciseName: "Snatch", RPE: 10, Action: domain.ActionMiss},
			{ExerciseIndex: 1, SetIndex: 0, ExerciseName: "Back Squat", RPE: 9.5},
		},
	}}
	f := ComplexFatigueFlags(logs)
	assert.Equal(t, 0, f.ComplexSetCount)
	assert.Equal(t, 0.0, f.Score)
}

func TestFatigued(t *testing.T) {
	tests := []struct {
		name      string
		flags     FatigueFlags
		readiness float64
		want      bool
	}{
		{"fresh athlete", FatigueFlags{}, 3, false},
		{"low readiness alone", FatigueFlags{}, 2, true},
		{"high rpe accumulation", FatigueFlags{HighRPECount: 10, ComplexSetCount: 100, Score: 0.1}, 4, true},
		{"miss accumulation", FatigueFlags{MissCount: 5, ComplexSetCount: 100, Score: 0.1}, 4, true},
		{"score threshold", FatigueFlags{HighRPECount: 3, ComplexSetCount: 10, Score: 0.3}, 4, true},
		{"below all thresholds", FatigueFlags{HighRPECount: 2, MissCount: 1, ComplexSetCount: 20, Score: 0.2}, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Fatigued(tt.readiness))
		})
	}
}

func TestNewGeneratorEvaluatesFatigueOnce(t *testing.T) {
	p := testProfile()
	g := NewGenerator(p, 42, complexSetLogs(8, 4, 0)) // score well past 0.3
	assert.True(t, g.Fatigued)

	g = NewGenerator(p, 42, nil)
	assert.False(t, g.Fatigued)

	p.ReadinessLog = []domain.ReadinessEntry{{Score: 1}}
	g = NewGenerator(p, 42, nil)
	assert.True(t, g.Fatigued, "low readiness flags fatigue without any set logs")
}
