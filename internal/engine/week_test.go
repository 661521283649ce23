package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/oly-planner/internal/domain"
)

func TestBalancedTemplateIndex(t *testing.T) {
	// 3+ day schedules rotate by day.
	assert.Equal(t, 0, BalancedTemplateIndex(3, 0, 0))
	assert.Equal(t, 1, BalancedTemplateIndex(3, 1, 0))
	assert.Equal(t, 3, BalancedTemplateIndex(3, 2, 0))
	assert.Equal(t, []int{0, 1, 0, 1}, []int{
		BalancedTemplateIndex(4, 0, 0), BalancedTemplateIndex(4, 1, 0),
		BalancedTemplateIndex(4, 2, 0), BalancedTemplateIndex(4, 3, 0),
	})

	// 1-2 day schedules rotate across weeks so everything still gets trained.
	assert.Equal(t, 0, BalancedTemplateIndex(1, 0, 0))
	assert.Equal(t, 1, BalancedTemplateIndex(1, 0, 1))
	assert.Equal(t, 3, BalancedTemplateIndex(1, 0, 2))
	assert.Equal(t, 0, BalancedTemplateIndex(1, 0, 3))

	assert.Equal(t, []int{0, 1}, []int{BalancedTemplateIndex(2, 0, 0), BalancedTemplateIndex(2, 1, 0)})
	assert.Equal(t, []int{3, 0}, []int{BalancedTemplateIndex(2, 0, 1), BalancedTemplateIndex(2, 1, 1)})
}

func TestHypertrophyProgression(t *testing.T) {
	tests := []struct {
		week    int
		phase   domain.Phase
		wantSet float64
		wantRIR int
	}{
		{0, domain.PhaseAccumulation, 1.0, 1},
		{1, domain.PhaseAccumulation, 1.0, 0},
		{2, domain.PhaseIntensification, 1.2, 0},
		{3, domain.PhaseDeload, 0.6, 2},
		{7, domain.PhaseDeload, 0.6, 2},
	}
	for _, tt := range tests {
		got := HypertrophyProgression(tt.week, tt.phase)
		assert.InDelta(t, tt.wantSet, got.SetMultiplier, 1e-9, "week %d", tt.week)
		assert.Equal(t, tt.wantRIR, got.RIRAdjustment, "week %d", tt.week)
	}
}

func TestWeekPlanStructure(t *testing.T) {
	p := testProfile() // main days 2,4,6 accessory 7
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)
	require.Len(t, week.Days, 4)
	assert.Equal(t, domain.PhaseAccumulation, week.Phase)

	assert.Equal(t, domain.DaySnatch, week.Days[0].Kind)
	assert.Equal(t, 2, week.Days[0].Weekday)
	assert.Equal(t, domain.DayCleanJerk, week.Days[1].Kind)
	assert.Equal(t, 4, week.Days[1].Weekday)
	assert.Equal(t, domain.DayCombined, week.Days[2].Kind)
	assert.Equal(t, 6, week.Days[2].Weekday)
	assert.Equal(t, domain.DayAccessory, week.Days[3].Kind)
	assert.Equal(t, 7, week.Days[3].Weekday)

	// Snatch day: main lift, pull, squat.
	require.Len(t, week.Days[0].Work, 3)
	assert.Equal(t, domain.LiftSnatch, week.Days[0].Work[0].LiftKey)
	assert.Equal(t, domain.LiftBackSquat, week.Days[0].Work[2].LiftKey)

	// Accessory day closes with core work and carries no percentages.
	acc := week.Days[3].Work
	require.Len(t, acc, 3)
	assert.Equal(t, "Core + Mobility", acc[2].Name)
	assert.Zero(t, acc[0].Pct)
}

func TestWeekPlanIntensityBounds(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramCompetition
	g := &Generator{Profile: p, Seed: 42}

	for w := 0; w < 8; w++ {
		week := g.WeekPlan(w)
		assert.GreaterOrEqual(t, week.Intensity, 0.55)
		assert.LessOrEqual(t, week.Intensity, 0.92)
		assert.GreaterOrEqual(t, week.VolumeFactor, 0.45)
		assert.LessOrEqual(t, week.VolumeFactor, 1.10)
	}
}

func TestWeekPlanDeloadBacksOff(t *testing.T) {
	p := testProfile()
	g := &Generator{Profile: p, Seed: 42}

	work := g.WeekPlan(1)
	deload := g.WeekPlan(3)
	assert.Less(t, deload.VolumeFactor, work.VolumeFactor)
	assert.Less(t, deload.Intensity, work.Intensity)
}

func TestWeekPlanScheduleCollision(t *testing.T) {
	p := testProfile()
	p.MainDays = []int{2, 4, 6}
	p.AccessoryDays = []int{4, 7} // 4 collides with a main day

	g := &Generator{Profile: p, Seed: 42}
	week := g.WeekPlan(0)
	require.Len(t, week.Days, 4)

	seen := map[int]int{}
	for _, d := range week.Days {
		seen[d.Weekday]++
	}
	for dow, n := range seen {
		assert.Equal(t, 1, n, "weekday %d scheduled twice", dow)
	}
	assert.Equal(t, domain.DayCleanJerk, week.Days[1].Kind, "main session wins the collision")
}

func TestWeekPlanDiagnosticComplex(t *testing.T) {
	p := testProfile()
	p.Limiter = domain.LimiterPull
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)
	main := week.Days[0].Work[0]
	assert.Equal(t, "Snatch Pull + Hang Snatch + Snatch", main.Name)
	// 3-movement complex: 5% hardness cut then the 3-rep cap.
	assert.LessOrEqual(t, main.Pct, 0.85)

	// Fatigue downgrades the complex and cuts intensity further.
	gf := &Generator{Profile: p, Seed: 42, Fatigued: true}
	weekf := gf.WeekPlan(0)
	assert.Equal(t, "Snatch Pull + Snatch", weekf.Days[0].Work[0].Name)
	assert.Less(t, weekf.Days[0].Work[0].Pct, main.Pct+1e-9)
}

func TestWeekPlanDeterminism(t *testing.T) {
	p := testProfile()
	g1 := &Generator{Profile: p, Seed: 42}
	g2 := &Generator{Profile: p, Seed: 42}
	for w := 0; w < 8; w++ {
		assert.Equal(t, g1.WeekPlan(w), g2.WeekPlan(w), "week %d", w)
	}
}

func TestWeekPlanDuration60Enforcement(t *testing.T) {
	p := testProfile()
	p.Duration = 60
	p.ProgramType = domain.ProgramPowerbuilding // normally adds extra work
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)
	for _, day := range week.Days {
		if day.Kind == domain.DayAccessory {
			assert.Empty(t, day.Work, "60-minute sessions drop accessory days")
			continue
		}
		assert.LessOrEqual(t, len(day.Work), 3)
		for _, ex := range day.Work {
			assert.LessOrEqual(t, ex.Sets, 5)
		}
	}
}

func TestWeekPlanPowerbuildingSupplemental(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramPowerbuilding
	p.Duration = 90
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)

	snatchDay := week.Days[0]
	require.Greater(t, len(snatchDay.Work), 3, "90-minute powerbuilding adds supplemental work")
	hyp := snatchDay.Work[3]
	assert.Equal(t, domain.TagHypertrophy, hyp.Tag)
	require.NotNil(t, hyp.TargetRIR)
	assert.GreaterOrEqual(t, *hyp.TargetRIR, 0)

	// Accessory day becomes the pump session.
	acc := week.Days[3]
	assert.Equal(t, "Hypertrophy + Pump", acc.Title)
	assert.Equal(t, domain.TagCore, acc.Work[len(acc.Work)-1].Tag)
}

func TestWeekPlanHypertrophySupplemental(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramHypertrophy
	p.Duration = 75
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)
	assert.Greater(t, len(week.Days[0].Work), 3)
	assert.Greater(t, len(week.Days[1].Work), 3)

	// No duplicate supplemental movements within a day.
	for _, day := range week.Days {
		seen := map[string]int{}
		for _, ex := range day.Work {
			if ex.Tag == domain.TagHypertrophy {
				seen[ex.Name]++
			}
		}
		for name, n := range seen {
			assert.Equal(t, 1, n, "%s repeated on %s", name, day.Title)
		}
	}
}

func TestWeekPlanStrengthSupport(t *testing.T) {
	p := testProfile()
	p.ProgramType = domain.ProgramStrength
	p.Duration = 75
	g := &Generator{Profile: p, Seed: 42}

	week := g.WeekPlan(0)
	snatchDay := week.Days[0]
	require.Len(t, snatchDay.Work, 4)
	assert.Equal(t, domain.TagStrength, snatchDay.Work[3].Tag)

	accessory := week.Days[3]
	assert.Len(t, accessory.Work, 3, "strength support never touches accessory days")
}
