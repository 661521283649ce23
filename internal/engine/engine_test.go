package engine

import (
	"alcyxob/oly-planner/internal/domain"
)

// testProfile returns a fully populated profile for engine tests. Individual
// tests mutate copies as needed.
func testProfile() *domain.Profile {
	p := domain.DefaultProfile("Test")
	p.Maxes = domain.Maxes{
		Snatch:      100,
		CleanJerk:   120,
		FrontSquat:  140,
		BackSquat:   160,
		PushPress:   80,
		StrictPress: 60,
	}
	p.WorkingMaxes = p.Maxes.WorkingMaxes()
	p.TrainingAge = 3
	p.TransitionWeeks = 0
	return p
}

func ptrFloat(v float64) *float64 { return &v }
