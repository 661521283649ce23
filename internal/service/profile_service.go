package service

import (
	"context"
	"errors"
	"math"
	"time"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("a profile with that name already exists")
	ErrProfileNameMissing = errors.New("profile name is required")
)

type ProfileService interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	GetProfile(ctx context.Context, name string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, name string, updated *domain.Profile) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, name string) error
	LogReadiness(ctx context.Context, name string, check ReadinessCheck) (*domain.ReadinessEntry, error)
}

// ReadinessCheck is the raw wellness questionnaire input. Sleep is hours;
// the remaining fields are 1-5 scales.
type ReadinessCheck struct {
	Sleep     float64
	Quality   int
	Stress    int
	Soreness  int
	Readiness int
	Notes     string
}

type profileService struct {
	profileRepo repository.ProfileRepository
	blockRepo   repository.BlockRepository
	setLogRepo  repository.SetLogRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository, blockRepo repository.BlockRepository, setLogRepo repository.SetLogRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		blockRepo:   blockRepo,
		setLogRepo:  setLogRepo,
	}
}

// CreateProfile stores a new named profile. Fields left at their zero value
// are filled from the documented defaults.
func (s *profileService) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil || profile.Name == "" {
		return nil, ErrProfileNameMissing
	}

	if len(profile.MainDays) == 0 {
		profile.MainDays = domain.DefaultProfile(profile.Name).MainDays
	}
	sanitizeProfile(profile)
	profile.WorkingMaxes = profile.Maxes.WorkingMaxes()

	id, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	profile.ID = id
	return s.profileRepo.GetByName(ctx, profile.Name)
}

func (s *profileService) GetProfile(ctx context.Context, name string) (*domain.Profile, error) {
	if name == "" {
		return nil, ErrProfileNameMissing
	}
	profile, err := s.profileRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	sanitizeProfile(profile)
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}

// UpdateProfile replaces a profile's configuration and maxes. Working maxes
// are recomputed from the new true maxes.
func (s *profileService) UpdateProfile(ctx context.Context, name string, updated *domain.Profile) (*domain.Profile, error) {
	if name == "" {
		return nil, ErrProfileNameMissing
	}

	existing, err := s.profileRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	// Identity and history survive the update.
	updated.ID = existing.ID
	updated.Name = existing.Name
	updated.CreatedAt = existing.CreatedAt
	updated.ReadinessLog = existing.ReadinessLog
	updated.LastBlockSeed = existing.LastBlockSeed
	if updated.LiftAdjustments == nil {
		updated.LiftAdjustments = existing.LiftAdjustments
	}

	sanitizeProfile(updated)
	updated.WorkingMaxes = updated.Maxes.WorkingMaxes()

	if err := s.profileRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.profileRepo.GetByName(ctx, name)
}

// DeleteProfile removes a profile together with its blocks and set logs.
func (s *profileService) DeleteProfile(ctx context.Context, name string) error {
	if name == "" {
		return ErrProfileNameMissing
	}
	if err := s.profileRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if err := s.blockRepo.DeleteByProfile(ctx, name); err != nil {
		return err
	}
	return s.setLogRepo.DeleteByProfile(ctx, name)
}

// LogReadiness appends a wellness check to the profile's readiness log. The
// composite score averages sleep (halved to land on a 1-5 scale), sleep
// quality, inverted stress and soreness, and self-rated readiness.
func (s *profileService) LogReadiness(ctx context.Context, name string, check ReadinessCheck) (*domain.ReadinessEntry, error) {
	profile, err := s.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}

	score := (check.Sleep/2 +
		float64(check.Quality) +
		float64(6-check.Stress) +
		float64(6-check.Soreness) +
		float64(check.Readiness)) / 5
	score = math.Round(score*10) / 10

	entry := domain.ReadinessEntry{
		Date:     time.Now(),
		Score:    score,
		Sleep:    check.Sleep,
		Quality:  check.Quality,
		Stress:   check.Stress,
		Soreness: check.Soreness,
		Notes:    check.Notes,
	}
	profile.ReadinessLog = append(profile.ReadinessLog, entry)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return &entry, nil
}

// sanitizeProfile repairs a missing or malformed configuration in place,
// falling back to the documented defaults field by field. Stored profiles
// from older versions may lack newer fields entirely.
func sanitizeProfile(p *domain.Profile) {
	def := domain.DefaultProfile(p.Name)

	if p.Units != domain.UnitsKg && p.Units != domain.UnitsLb {
		p.Units = def.Units
	}
	switch p.ProgramType {
	case domain.ProgramGeneral, domain.ProgramStrength, domain.ProgramMaxStrength,
		domain.ProgramHypertrophy, domain.ProgramPowerbuilding, domain.ProgramCompetition:
	default:
		p.ProgramType = def.ProgramType
	}
	if p.AthleteMode != domain.ModeCompetition {
		p.AthleteMode = domain.ModeRecreational
	}
	if p.TrainingAge < 0 || math.IsNaN(p.TrainingAge) || math.IsInf(p.TrainingAge, 0) {
		p.TrainingAge = def.TrainingAge
	}
	if p.Recovery < 1 || p.Recovery > 5 {
		p.Recovery = def.Recovery
	}
	if p.Limiter == "" {
		p.Limiter = def.Limiter
	}
	if p.Injuries == nil {
		p.Injuries = []string{}
	}
	if p.MainDays == nil {
		p.MainDays = []int{}
	}
	if p.AccessoryDays == nil {
		p.AccessoryDays = []int{}
	}
	if p.Duration <= 0 {
		p.Duration = def.Duration
	}
	if p.RestDuration <= 0 {
		p.RestDuration = def.RestDuration
	}
	if p.BlockLength < 4 || p.BlockLength > 12 {
		p.BlockLength = def.BlockLength
	}
	if p.TransitionWeeks < 0 {
		p.TransitionWeeks = def.TransitionWeeks
	}
	switch p.TransitionProfile {
	case domain.TransitionStandard, domain.TransitionConservative, domain.TransitionAggressive:
	default:
		p.TransitionProfile = def.TransitionProfile
	}
	switch p.VolumePref {
	case domain.VolumeStandard, domain.VolumeReduced, domain.VolumeMinimal:
	default:
		p.VolumePref = def.VolumePref
	}
	if p.LiftAdjustments == nil {
		p.LiftAdjustments = map[domain.LiftKey]float64{}
	}
	if p.AccessoryWeights == nil {
		p.AccessoryWeights = map[string]float64{}
	}

	p.NormalizeSchedule()
}
