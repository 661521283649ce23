package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/oly-planner/internal/domain"
)

func feedbackDay() domain.DayPlan {
	return domain.DayPlan{
		Title: "Snatch Focus", Kind: domain.DaySnatch, LiftKey: domain.LiftSnatch,
		Work: []domain.Prescription{
			{Name: "Snatch", LiftKey: domain.LiftSnatch, Sets: 4, Reps: 2, Pct: 0.80},
		},
	}
}

// lastWorkIndex locates the final work set of the first exercise's scheme.
func lastWorkIndex(t *testing.T, day domain.DayPlan, p *domain.Profile) int {
	t.Helper()
	scheme := BuildSetScheme(day.Work[0], domain.LiftSnatch, p)
	for i := len(scheme) - 1; i >= 0; i-- {
		if scheme[i].Tag == domain.SetTagWork {
			return i
		}
	}
	t.Fatal("no work set in scheme")
	return -1
}

func TestDayFeedbackActionBias(t *testing.T) {
	p := testProfile()
	day := feedbackDay()
	last := lastWorkIndex(t, day, p)

	tests := []struct {
		action domain.SetAction
		want   float64
	}{
		{domain.ActionMake, 0.0025},
		{domain.ActionBelt, 0.0010},
		{domain.ActionHeavy, -0.0015},
		{domain.ActionMiss, -0.0050},
	}
	for _, tt := range tests {
		log := &domain.DayLog{}
		log.PutEntry(domain.SetLogEntry{ExerciseIndex: 0, SetIndex: last, ExerciseName: "Snatch", Action: tt.action})
		deltas := DayFeedback(day, log, p)
		assert.InDelta(t, tt.want, deltas[domain.LiftSnatch], 1e-9, "action %s", tt.action)
	}
}

func TestDayFeedbackPerformanceRatio(t *testing.T) {
	p := testProfile()
	day := feedbackDay()
	last := lastWorkIndex(t, day, p)

	// Prescribed is 80. Lifting 84 is +5%, clamped to +2%, damped to +0.5%.
	log := &domain.DayLog{}
	log.PutEntry(domain.SetLogEntry{ExerciseIndex: 0, SetIndex: last, ExerciseName: "Snatch", Action: domain.ActionMake, Weight: 84})
	deltas := DayFeedback(day, log, p)
	assert.InDelta(t, 0.0025+0.25*0.02, deltas[domain.LiftSnatch], 1e-9)

	// Lifting under has the mirrored effect.
	log = &domain.DayLog{}
	log.PutEntry(domain.SetLogEntry{ExerciseIndex: 0, SetIndex: last, ExerciseName: "Snatch", Weight: 76})
	deltas = DayFeedback(day, log, p)
	assert.InDelta(t, -0.25*0.02, deltas[domain.LiftSnatch], 1e-9)
}

func TestDayFeedbackSkipsPercentagelessWork(t *testing.T) {
	p := testProfile()
	day := domain.DayPlan{
		Kind: domain.DayAccessory,
		Work: []domain.Prescription{
			{Name: "Dips", Sets: 3, Reps: 10},
			{Name: "Core + Mobility", Sets: 1, Reps: 1},
		},
	}
	deltas := DayFeedback(day, &domain.DayLog{}, p)
	assert.Empty(t, deltas)
}

func TestDayFeedbackRespectsWorkSetOverride(t *testing.T) {
	p := testProfile()
	day := feedbackDay()

	// Cut to 2 work sets: the last work set moves earlier in the scheme.
	log := &domain.DayLog{}
	log.SetWorkSetsOverride(0, 2)
	eff := day.Work[0]
	eff.Sets = 2
	scheme := BuildSetScheme(eff, domain.LiftSnatch, p)
	last := len(scheme) - 1
	require.Equal(t, domain.SetTagWork, scheme[last].Tag)

	log.PutEntry(domain.SetLogEntry{ExerciseIndex: 0, SetIndex: last, ExerciseName: "Snatch", Action: domain.ActionMake})
	deltas := DayFeedback(day, log, p)
	assert.InDelta(t, 0.0025, deltas[domain.LiftSnatch], 1e-9)
}

func TestApplyFeedbackClamps(t *testing.T) {
	p := testProfile()
	p.LiftAdjustments = map[domain.LiftKey]float64{domain.LiftSnatch: 0.049}

	ApplyFeedback(p, map[domain.LiftKey]float64{
		domain.LiftSnatch:    0.01,
		domain.LiftCleanJerk: -0.06,
	})
	assert.InDelta(t, 0.05, p.LiftAdjustments[domain.LiftSnatch], 1e-9)
	assert.InDelta(t, -0.05, p.LiftAdjustments[domain.LiftCleanJerk], 1e-9)
}

func TestApplyFeedbackInitializesMap(t *testing.T) {
	p := testProfile()
	p.LiftAdjustments = nil
	ApplyFeedback(p, map[domain.LiftKey]float64{domain.LiftBackSquat: 0.002})
	assert.InDelta(t, 0.002, p.LiftAdjustments[domain.LiftBackSquat], 1e-9)
}
