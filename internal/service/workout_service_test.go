package service

import (
	"context"
	"testing"

	"alcyxob/oly-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workSetIndexes returns the scheme indexes tagged as work sets.
func workSetIndexes(sets []domain.SetTarget) []int {
	var out []int
	for i, s := range sets {
		if s.Tag == domain.SetTagWork {
			out = append(out, i)
		}
	}
	return out
}

func TestRenderDayExpandsSchemes(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	day, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	require.Equal(t, len(day.Day.Work), len(day.Exercises))
	assert.Nil(t, day.Log)

	// The main lift carries a warm-up ladder before its work sets.
	main := day.Exercises[0]
	work := workSetIndexes(main.Sets)
	require.NotEmpty(t, work)
	assert.Equal(t, main.Exercise.Sets, len(work))
	assert.Greater(t, work[0], 0, "expected warm-up sets before the first work set")
	for _, wi := range work {
		assert.Greater(t, main.Sets[wi].TargetWeight, 0.0)
	}
}

func TestRenderDayNoBlock(t *testing.T) {
	ps, _, ws := newTestServices(t)
	p := seedProfile(t, ps)

	_, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	assert.ErrorIs(t, err, ErrNoCurrentBlock)
}

func TestWorkSetsOverrideChangesRenderedScheme(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	two := 2
	_, err = ws.SetOverrides(context.Background(), p.Name, 0, 0, 0, &two, nil)
	require.NoError(t, err)

	day, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	assert.Len(t, workSetIndexes(day.Exercises[0].Sets), 2)

	// Clearing the override restores the prescribed count.
	_, err = ws.SetOverrides(context.Background(), p.Name, 0, 0, 0, nil, nil)
	require.NoError(t, err)
	day, err = ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	assert.Len(t, workSetIndexes(day.Exercises[0].Sets), day.Exercises[0].Exercise.Sets)
}

func TestWeightOffsetOverrideShiftsWeights(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	before, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	wi := workSetIndexes(before.Exercises[0].Sets)[0]
	baseWeight := before.Exercises[0].Sets[wi].TargetWeight

	offset := 0.05
	_, err = ws.SetOverrides(context.Background(), p.Name, 0, 0, 0, nil, &offset)
	require.NoError(t, err)

	after, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, after.Exercises[0].Sets[wi].TargetWeight, baseWeight)
}

func TestLoggedMissLowersLaterSets(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	day, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	work := workSetIndexes(day.Exercises[0].Sets)
	require.GreaterOrEqual(t, len(work), 2)
	firstWeight := day.Exercises[0].Sets[work[0]].TargetWeight
	secondWeight := day.Exercises[0].Sets[work[1]].TargetWeight
	assert.Equal(t, firstWeight, secondWeight)

	_, err = ws.LogSet(context.Background(), p.Name, 0, 0, 0, work[0], SetInput{
		Weight: firstWeight, Reps: 1, Action: domain.ActionMiss,
	})
	require.NoError(t, err)

	after, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	assert.Less(t, after.Exercises[0].Sets[work[1]].TargetWeight, secondWeight)
	// The missed set itself is unchanged.
	assert.Equal(t, firstWeight, after.Exercises[0].Sets[work[0]].TargetWeight)
}

func TestLogSetValidation(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	_, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	_, err = ws.LogSet(context.Background(), p.Name, 0, 0, 99, 0, SetInput{})
	assert.Error(t, err)
	_, err = ws.LogSet(context.Background(), p.Name, 99, 0, 0, 0, SetInput{})
	assert.Error(t, err)
}

func TestCompleteDayAppliesFeedback(t *testing.T) {
	ps, bs, ws := newTestServices(t)
	p := seedProfile(t, ps)
	block, err := bs.GenerateBlock(context.Background(), p.Name)
	require.NoError(t, err)

	day, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	work := workSetIndexes(day.Exercises[0].Sets)
	last := work[len(work)-1]
	prescribed := day.Exercises[0].Sets[last].TargetWeight

	_, err = ws.LogSet(context.Background(), p.Name, 0, 0, 0, last, SetInput{
		Weight: prescribed, Reps: day.Exercises[0].Sets[last].TargetReps, Action: domain.ActionMake,
	})
	require.NoError(t, err)

	deltas, err := ws.CompleteDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0025, deltas[domain.LiftSnatch], 1e-9)

	got, err := ps.GetProfile(context.Background(), p.Name)
	require.NoError(t, err)
	assert.InDelta(t, 0.0025, got.Adjustment(domain.LiftSnatch), 1e-9)

	// Completion is stamped onto both the log and the block.
	rendered, err := ws.RenderDay(context.Background(), p.Name, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, rendered.Log)
	assert.True(t, rendered.Log.Completed)

	stored, err := bs.BlockByID(context.Background(), block.ID.Hex())
	require.NoError(t, err)
	assert.True(t, stored.Weeks[0].Days[0].Completed)
	assert.NotNil(t, stored.Weeks[0].Days[0].CompletedAt)
	assert.NotEmpty(t, stored.Weeks[0].Days[0].Results)

	_, err = ws.CompleteDay(context.Background(), p.Name, 0, 0)
	assert.ErrorIs(t, err, ErrDayAlreadyCompleted)
}
