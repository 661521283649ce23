package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/engine"
	"alcyxob/oly-planner/internal/repository"
)

var ErrDayAlreadyCompleted = errors.New("day is already completed")

// ExerciseScheme pairs a prescription with its expanded sets. Weights
// already include the athlete's offset override and within-session
// adjustments from earlier logged work sets.
type ExerciseScheme struct {
	Exercise domain.Prescription `json:"exercise"`
	Sets     []domain.SetTarget  `json:"sets"`
}

// DayScheme is a fully rendered training day plus its log state.
type DayScheme struct {
	Day       domain.DayPlan   `json:"day"`
	Exercises []ExerciseScheme `json:"exercises"`
	Log       *domain.DayLog   `json:"log,omitempty"`
}

type WorkoutService interface {
	RenderDay(ctx context.Context, profileName string, weekIndex, dayIndex int) (*DayScheme, error)
	LogSet(ctx context.Context, profileName string, weekIndex, dayIndex, exIndex, setIndex int, set SetInput) (*domain.DayLog, error)
	SetOverrides(ctx context.Context, profileName string, weekIndex, dayIndex, exIndex int, workSets *int, weightOffset *float64) (*domain.DayLog, error)
	CompleteDay(ctx context.Context, profileName string, weekIndex, dayIndex int) (map[domain.LiftKey]float64, error)
}

// SetInput is what the athlete reports for one performed set.
type SetInput struct {
	Weight float64          `json:"weight"`
	Reps   int              `json:"reps"`
	RPE    float64          `json:"rpe"`
	Action domain.SetAction `json:"action"`
}

type workoutService struct {
	profileRepo repository.ProfileRepository
	blockRepo   repository.BlockRepository
	setLogRepo  repository.SetLogRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(profileRepo repository.ProfileRepository, blockRepo repository.BlockRepository, setLogRepo repository.SetLogRepository) WorkoutService {
	return &workoutService{
		profileRepo: profileRepo,
		blockRepo:   blockRepo,
		setLogRepo:  setLogRepo,
	}
}

// loadDay resolves the (profile, current block, day plan, day log) tuple. A
// missing day log is replaced with an empty one, never an error.
func (s *workoutService) loadDay(ctx context.Context, profileName string, weekIndex, dayIndex int) (*domain.Profile, *domain.Block, *domain.DayPlan, *domain.DayLog, error) {
	profile, err := s.profileRepo.GetByName(ctx, profileName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, nil, ErrProfileNotFound
		}
		return nil, nil, nil, nil, err
	}
	sanitizeProfile(profile)

	block, err := s.blockRepo.GetCurrent(ctx, profileName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, nil, ErrNoCurrentBlock
		}
		return nil, nil, nil, nil, err
	}
	if weekIndex < 0 || weekIndex >= len(block.Weeks) {
		return nil, nil, nil, nil, fmt.Errorf("week %d out of range", weekIndex)
	}
	week := &block.Weeks[weekIndex]
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return nil, nil, nil, nil, fmt.Errorf("day %d out of range", dayIndex)
	}
	day := &week.Days[dayIndex]

	log, err := s.setLogRepo.Get(ctx, profileName, weekIndex, dayIndex)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, nil, err
		}
		log = &domain.DayLog{ProfileName: profileName, WeekIndex: weekIndex, DayIndex: dayIndex}
	}
	return profile, block, day, log, nil
}

// renderScheme expands one prescription honoring the log's overrides and the
// cumulative adjustment from previously logged work sets.
func renderScheme(ex domain.Prescription, exIndex int, day *domain.DayPlan, log *domain.DayLog, p *domain.Profile) []domain.SetTarget {
	key := ex.LiftKey
	if key == "" {
		key = day.LiftKey
	}

	withOverride := ex
	withOverride.Sets = log.WorkSetsOverride(exIndex, ex.Sets)

	scheme := engine.BuildSetScheme(withOverride, key, p)
	for si := range scheme {
		adj := engine.CumulativeAdjustment(log, exIndex, si, scheme)
		scheme[si].TargetWeight = engine.AdjustedSetWeight(scheme[si], adj)
	}
	return scheme
}

// RenderDay expands every prescription of a day into concrete set targets.
func (s *workoutService) RenderDay(ctx context.Context, profileName string, weekIndex, dayIndex int) (*DayScheme, error) {
	profile, _, day, log, err := s.loadDay(ctx, profileName, weekIndex, dayIndex)
	if err != nil {
		return nil, err
	}

	exercises := make([]ExerciseScheme, 0, len(day.Work))
	for i, ex := range day.Work {
		exercises = append(exercises, ExerciseScheme{
			Exercise: ex,
			Sets:     renderScheme(ex, i, day, log, profile),
		})
	}

	out := &DayScheme{Day: *day, Exercises: exercises}
	if len(log.Entries) > 0 || len(log.Overrides) > 0 || log.Completed {
		out.Log = log
	}
	return out, nil
}

// LogSet records one performed set, overwriting any earlier entry for the
// same (exercise, set) address.
func (s *workoutService) LogSet(ctx context.Context, profileName string, weekIndex, dayIndex, exIndex, setIndex int, set SetInput) (*domain.DayLog, error) {
	_, _, day, log, err := s.loadDay(ctx, profileName, weekIndex, dayIndex)
	if err != nil {
		return nil, err
	}
	if exIndex < 0 || exIndex >= len(day.Work) {
		return nil, fmt.Errorf("exercise %d out of range", exIndex)
	}
	if setIndex < 0 {
		return nil, fmt.Errorf("set %d out of range", setIndex)
	}

	log.PutEntry(domain.SetLogEntry{
		ExerciseIndex: exIndex,
		SetIndex:      setIndex,
		ExerciseName:  day.Work[exIndex].Name,
		Weight:        set.Weight,
		Reps:          set.Reps,
		RPE:           set.RPE,
		Action:        set.Action,
		Status:        domain.SetDone,
	})

	if err := s.setLogRepo.Upsert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// SetOverrides updates the per-exercise work-set count and weight offset.
// A nil value clears the corresponding override.
func (s *workoutService) SetOverrides(ctx context.Context, profileName string, weekIndex, dayIndex, exIndex int, workSets *int, weightOffset *float64) (*domain.DayLog, error) {
	_, _, day, log, err := s.loadDay(ctx, profileName, weekIndex, dayIndex)
	if err != nil {
		return nil, err
	}
	if exIndex < 0 || exIndex >= len(day.Work) {
		return nil, fmt.Errorf("exercise %d out of range", exIndex)
	}

	if workSets == nil {
		log.ClearWorkSetsOverride(exIndex)
	} else {
		log.SetWorkSetsOverride(exIndex, *workSets)
	}
	if weightOffset == nil {
		log.ClearWeightOffsetOverride(exIndex)
	} else {
		log.SetWeightOffsetOverride(exIndex, *weightOffset)
	}

	if err := s.setLogRepo.Upsert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// CompleteDay closes out a training day: per-lift feedback is folded into
// the profile's persistent adjustments, and the completion is stamped both
// on the log and on the block itself.
func (s *workoutService) CompleteDay(ctx context.Context, profileName string, weekIndex, dayIndex int) (map[domain.LiftKey]float64, error) {
	profile, block, day, log, err := s.loadDay(ctx, profileName, weekIndex, dayIndex)
	if err != nil {
		return nil, err
	}
	if log.Completed {
		return nil, ErrDayAlreadyCompleted
	}

	deltas := engine.DayFeedback(*day, log, profile)
	engine.ApplyFeedback(profile, deltas)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	now := time.Now()
	log.Completed = true
	log.CompletedAt = &now
	if err := s.setLogRepo.Upsert(ctx, log); err != nil {
		return nil, err
	}

	day.Completed = true
	day.CompletedAt = &now
	day.Results = append([]domain.SetLogEntry(nil), log.Entries...)
	if err := s.blockRepo.Update(ctx, block); err != nil {
		return nil, err
	}

	return deltas, nil
}
