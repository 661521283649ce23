package service

import (
	"context"
	"testing"

	"alcyxob/oly-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (ProfileService, BlockService, WorkoutService) {
	t.Helper()
	profiles := newMemProfileRepo()
	blocks := newMemBlockRepo()
	logs := newMemSetLogRepo()
	return NewProfileService(profiles, blocks, logs),
		NewBlockService(profiles, blocks, logs, nil),
		NewWorkoutService(profiles, blocks, logs)
}

func seedProfile(t *testing.T, ps ProfileService) *domain.Profile {
	t.Helper()
	p, err := ps.CreateProfile(context.Background(), &domain.Profile{
		Name:        "Athlete",
		TrainingAge: 3,
		Maxes:       domain.Maxes{Snatch: 100, CleanJerk: 120, FrontSquat: 140, BackSquat: 160},
	})
	require.NoError(t, err)
	return p
}

func TestCreateProfileFillsDefaults(t *testing.T) {
	ps, _, _ := newTestServices(t)
	p := seedProfile(t, ps)

	assert.Equal(t, domain.UnitsKg, p.Units)
	assert.Equal(t, domain.ProgramGeneral, p.ProgramType)
	assert.Equal(t, domain.VolumeReduced, p.VolumePref)
	assert.Equal(t, []int{2, 4, 6}, p.MainDays)
	assert.Equal(t, 8, p.BlockLength)
	assert.Equal(t, 75, p.Duration)
	assert.False(t, p.ID.IsZero())

	// Working maxes follow the true maxes at 90%.
	assert.InDelta(t, 90.0, p.WorkingMaxes.Snatch, 1e-9)
	assert.InDelta(t, 108.0, p.WorkingMaxes.CleanJerk, 1e-9)

	_, err := ps.CreateProfile(context.Background(), &domain.Profile{Name: "Athlete"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestCreateProfileRequiresName(t *testing.T) {
	ps, _, _ := newTestServices(t)
	_, err := ps.CreateProfile(context.Background(), &domain.Profile{})
	assert.ErrorIs(t, err, ErrProfileNameMissing)
}

func TestGetProfileNotFound(t *testing.T) {
	ps, _, _ := newTestServices(t)
	_, err := ps.GetProfile(context.Background(), "Nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfileRecomputesWorkingMaxes(t *testing.T) {
	ps, _, _ := newTestServices(t)
	p := seedProfile(t, ps)

	_, err := ps.LogReadiness(context.Background(), p.Name, ReadinessCheck{
		Sleep: 8, Quality: 4, Stress: 2, Soreness: 2, Readiness: 4,
	})
	require.NoError(t, err)

	updated := *p
	updated.Maxes.Snatch = 110
	got, err := ps.UpdateProfile(context.Background(), p.Name, &updated)
	require.NoError(t, err)

	assert.InDelta(t, 99.0, got.WorkingMaxes.Snatch, 1e-9)
	// The readiness log survives the update.
	assert.Len(t, got.ReadinessLog, 1)
}

func TestUpdateProfileNormalizesSchedule(t *testing.T) {
	ps, _, _ := newTestServices(t)
	p := seedProfile(t, ps)

	updated := *p
	updated.MainDays = []int{2, 4, 6}
	updated.AccessoryDays = []int{4, 7}
	got, err := ps.UpdateProfile(context.Background(), p.Name, &updated)
	require.NoError(t, err)

	// A weekday in both sets trains the main session.
	assert.Equal(t, []int{7}, got.AccessoryDays)
}

func TestDeleteProfileCascades(t *testing.T) {
	ps, bs, _ := newTestServices(t)
	p := seedProfile(t, ps)

	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	require.NoError(t, ps.DeleteProfile(context.Background(), p.Name))

	_, err = ps.GetProfile(context.Background(), p.Name)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = bs.CurrentBlock(context.Background(), p.Name)
	assert.ErrorIs(t, err, ErrNoCurrentBlock)
}

func TestLogReadinessScore(t *testing.T) {
	ps, _, _ := newTestServices(t)
	p := seedProfile(t, ps)

	entry, err := ps.LogReadiness(context.Background(), p.Name, ReadinessCheck{
		Sleep: 8, Quality: 4, Stress: 2, Soreness: 3, Readiness: 4,
	})
	require.NoError(t, err)

	// (8/2 + 4 + (6-2) + (6-3) + 4) / 5 = 3.8
	assert.InDelta(t, 3.8, entry.Score, 1e-9)

	got, err := ps.GetProfile(context.Background(), p.Name)
	require.NoError(t, err)
	assert.InDelta(t, 3.8, got.LatestReadiness(), 1e-9)
}

func TestSanitizeProfileRepairsEnums(t *testing.T) {
	p := domain.DefaultProfile("X")
	p.ProgramType = "bogus"
	p.VolumePref = "huge"
	p.TransitionProfile = "warp"
	p.Recovery = 9
	p.TrainingAge = -2

	sanitizeProfile(p)

	assert.Equal(t, domain.ProgramGeneral, p.ProgramType)
	assert.Equal(t, domain.VolumeReduced, p.VolumePref)
	assert.Equal(t, domain.TransitionStandard, p.TransitionProfile)
	assert.Equal(t, 3, p.Recovery)
	assert.InDelta(t, 1.0, p.TrainingAge, 1e-9)
}
