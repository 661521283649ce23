package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/engine"
	"alcyxob/oly-planner/internal/repository"
	"alcyxob/oly-planner/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMissingMaxes    = errors.New("main lift maxes must be set before generating a block")
	ErrNoTrainingDays  = errors.New("at least one main training day must be scheduled")
	ErrNoCurrentBlock  = errors.New("no current block for this profile")
	ErrBlockNotFound   = errors.New("block not found")
	ErrInvalidBlockID  = errors.New("invalid block id")
	ErrBadImportFormat = errors.New("import data is not in the expected CSV format")
	ErrBackupDisabled  = errors.New("remote backup is not configured")
)

type BlockService interface {
	GenerateBlock(ctx context.Context, profileName string) (*domain.Block, error)
	RegenerateBlock(ctx context.Context, profileName string) (*domain.Block, error)
	CurrentBlock(ctx context.Context, profileName string) (*domain.Block, error)
	BlockByID(ctx context.Context, blockID string) (*domain.Block, error)
	BlockHistory(ctx context.Context, profileName string, limit int) ([]domain.Block, error)
	SwapOptions(ctx context.Context, blockID string, weekIndex, dayIndex, exIndex int) ([]string, error)
	SwapExercise(ctx context.Context, blockID string, weekIndex, dayIndex, exIndex int, newName string) (*domain.Block, error)
	ExportCSV(ctx context.Context, blockID string) ([]byte, error)
	ImportCSV(ctx context.Context, profileName string, data []byte) (*domain.Block, error)
	BackupDownloadURL(ctx context.Context, blockID string) (string, error)
}

type blockService struct {
	profileRepo repository.ProfileRepository
	blockRepo   repository.BlockRepository
	setLogRepo  repository.SetLogRepository
	backup      *BlockBackup // nil when backup is disabled
}

// NewBlockService creates a new instance of blockService. backup may be nil.
func NewBlockService(profileRepo repository.ProfileRepository, blockRepo repository.BlockRepository, setLogRepo repository.SetLogRepository, backup *BlockBackup) BlockService {
	return &blockService{
		profileRepo: profileRepo,
		blockRepo:   blockRepo,
		setLogRepo:  setLogRepo,
		backup:      backup,
	}
}

// Fatigue assessment scans a bounded window of recent logs.
const recentLogWindow = 60

func (s *blockService) loadProfile(ctx context.Context, name string) (*domain.Profile, error) {
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

// buildBlock runs the generator for a given seed and persists the result as
// the profile's new current block.
func (s *blockService) buildBlock(ctx context.Context, profile *domain.Profile, seed int64) (*domain.Block, error) {
	if err := engine.ValidateMaxes(profile.Maxes); err != nil {
		return nil, ErrMissingMaxes
	}
	if len(profile.MainDays) == 0 {
		return nil, ErrNoTrainingDays
	}

	recent, err := s.setLogRepo.ListRecent(ctx, profile.Name, recentLogWindow)
	if err != nil {
		return nil, err
	}

	gen := engine.NewGenerator(profile, seed, recent)
	weeks := gen.BuildWeeks()
	ari := engine.BlockARI(weeks)
	total := profile.Maxes.Of(domain.LiftSnatch) + profile.Maxes.Of(domain.LiftCleanJerk)

	block := &domain.Block{
		Seed:        seed,
		ProfileName: profile.Name,
		StartDate:   time.Now(),
		ProgramType: profile.ProgramType,
		BlockLength: len(weeks),
		Weeks:       weeks,
		ARI:         ari,
		KValue:      engine.KValue(ari, total),
		Current:     true,
	}

	if err := s.blockRepo.ClearCurrent(ctx, profile.Name); err != nil {
		return nil, err
	}
	id, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		return nil, err
	}
	block.ID = id

	profile.LastBlockSeed = seed
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if s.backup != nil {
		s.backup.UploadAsync(block)
	}
	return block, nil
}

// GenerateBlock mints a fresh seed and generates a new current block.
func (s *blockService) GenerateBlock(ctx context.Context, profileName string) (*domain.Block, error) {
	profile, err := s.loadProfile(ctx, profileName)
	if err != nil {
		return nil, err
	}
	return s.buildBlock(ctx, profile, time.Now().UnixMilli())
}

// RegenerateBlock rebuilds the block from the stored seed, so the same
// exercise selections reappear under the profile's current configuration.
func (s *blockService) RegenerateBlock(ctx context.Context, profileName string) (*domain.Block, error) {
	profile, err := s.loadProfile(ctx, profileName)
	if err != nil {
		return nil, err
	}

	seed := profile.LastBlockSeed
	if current, err := s.blockRepo.GetCurrent(ctx, profileName); err == nil {
		seed = current.Seed
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if seed == 0 {
		return nil, ErrNoCurrentBlock
	}
	return s.buildBlock(ctx, profile, seed)
}

func (s *blockService) CurrentBlock(ctx context.Context, profileName string) (*domain.Block, error) {
	block, err := s.blockRepo.GetCurrent(ctx, profileName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoCurrentBlock
		}
		return nil, err
	}
	return block, nil
}

func (s *blockService) BlockByID(ctx context.Context, blockID string) (*domain.Block, error) {
	id, err := primitive.ObjectIDFromHex(blockID)
	if err != nil {
		return nil, ErrInvalidBlockID
	}
	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}
	return block, nil
}

func (s *blockService) BlockHistory(ctx context.Context, profileName string, limit int) ([]domain.Block, error) {
	return s.blockRepo.ListByProfile(ctx, profileName, limit)
}

// locatePrescription bounds-checks the (week, day, exercise) address.
func locatePrescription(block *domain.Block, weekIndex, dayIndex, exIndex int) (*domain.DayPlan, *domain.Prescription, error) {
	if weekIndex < 0 || weekIndex >= len(block.Weeks) {
		return nil, nil, fmt.Errorf("week %d out of range", weekIndex)
	}
	week := &block.Weeks[weekIndex]
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return nil, nil, fmt.Errorf("day %d out of range", dayIndex)
	}
	day := &week.Days[dayIndex]
	if exIndex < 0 || exIndex >= len(day.Work) {
		return nil, nil, fmt.Errorf("exercise %d out of range", exIndex)
	}
	return day, &day.Work[exIndex], nil
}

// swapFamily infers which pool an exercise can be swapped within. Accessory
// movements swap within their category; barbell lifts swap within the family
// implied by their lift key and name.
func swapFamily(ex domain.Prescription, day *domain.DayPlan) (engine.Family, string) {
	if cat := engine.AccessoryCategory(ex.Name); cat != "" {
		return "", cat
	}

	name := strings.ToLower(ex.Name)
	key := ex.LiftKey
	if key == "" {
		key = day.LiftKey
	}

	if strings.Contains(name, "pull") {
		if key == domain.LiftSnatch {
			return engine.FamilySnatchPull, ""
		}
		return engine.FamilyCleanPull, ""
	}
	switch key {
	case domain.LiftSnatch:
		return engine.FamilySnatch, ""
	case domain.LiftCleanJerk:
		return engine.FamilyCleanJerk, ""
	case domain.LiftBackSquat:
		return engine.FamilyBackSquat, ""
	case domain.LiftFrontSquat:
		return engine.FamilyFrontSquat, ""
	case domain.LiftPushPress, domain.LiftStrictPress:
		return engine.FamilyPress, ""
	}
	return "", ""
}

// SwapOptions lists the alternative exercises an entry can be swapped to.
func (s *blockService) SwapOptions(ctx context.Context, blockID string, weekIndex, dayIndex, exIndex int) ([]string, error) {
	block, err := s.BlockByID(ctx, blockID)
	if err != nil {
		return nil, err
	}
	day, ex, err := locatePrescription(block, weekIndex, dayIndex, exIndex)
	if err != nil {
		return nil, err
	}

	family, category := swapFamily(*ex, day)
	var pool []engine.Exercise
	switch {
	case category != "":
		pool = engine.AccessoryPoolFor(category)
	case family != "":
		pool = engine.Pool(family)
	default:
		return nil, nil
	}

	options := make([]string, 0, len(pool))
	for _, candidate := range pool {
		if candidate.Name != ex.Name {
			options = append(options, candidate.Name)
		}
	}
	return options, nil
}

// SwapExercise replaces one prescription with another from the same pool and
// clears any logged sets for that slot. An empty newName picks the next
// deterministic alternative.
func (s *blockService) SwapExercise(ctx context.Context, blockID string, weekIndex, dayIndex, exIndex int, newName string) (*domain.Block, error) {
	block, err := s.BlockByID(ctx, blockID)
	if err != nil {
		return nil, err
	}
	day, ex, err := locatePrescription(block, weekIndex, dayIndex, exIndex)
	if err != nil {
		return nil, err
	}

	profile, err := s.loadProfile(ctx, block.ProfileName)
	if err != nil {
		return nil, err
	}

	family, category := swapFamily(*ex, day)
	var replacement *engine.Exercise
	switch {
	case newName != "":
		options, err := s.SwapOptions(ctx, blockID, weekIndex, dayIndex, exIndex)
		if err != nil {
			return nil, err
		}
		for _, opt := range options {
			if opt == newName {
				replacement = &engine.Exercise{Name: newName}
				break
			}
		}
		if replacement == nil {
			return nil, fmt.Errorf("%q is not a valid swap for %q", newName, ex.Name)
		}
		// Carry over pool metadata when the target is catalogued.
		if category != "" {
			for _, candidate := range engine.AccessoryPoolFor(category) {
				if candidate.Name == newName {
					c := candidate
					replacement = &c
					break
				}
			}
		} else if family != "" {
			for _, candidate := range engine.Pool(family) {
				if candidate.Name == newName {
					c := candidate
					replacement = &c
					break
				}
			}
		}
	case family != "":
		phase := engine.PhaseForWeek(weekIndex)
		slotKey := fmt.Sprintf("swap_%d_%d_%d", weekIndex, dayIndex, exIndex)
		picked := engine.ChooseVariationExcluding(family, profile, block.Seed, weekIndex, phase, slotKey, []string{ex.Name}, dayIndex)
		replacement = &picked
	case category != "":
		pool := engine.AccessoryPoolFor(category)
		key := fmt.Sprintf("%d|swap|%s|%d|%d", block.Seed, category, weekIndex, exIndex)
		picked := engine.PickFromPoolExcluding(pool, key, weekIndex, []string{ex.Name})
		if picked == nil {
			return nil, fmt.Errorf("no alternatives for %q", ex.Name)
		}
		replacement = picked
	default:
		return nil, fmt.Errorf("%q cannot be swapped", ex.Name)
	}

	ex.Name = replacement.Name
	if replacement.LiftKey != "" {
		ex.LiftKey = replacement.LiftKey
	}
	if replacement.RecommendedPct > 0 {
		ex.RecommendedPct = replacement.RecommendedPct
	}
	if replacement.Description != "" {
		ex.Description = replacement.Description
	}

	if err := s.blockRepo.Update(ctx, block); err != nil {
		return nil, err
	}

	// Logged sets for the old exercise no longer apply.
	if log, err := s.setLogRepo.Get(ctx, block.ProfileName, weekIndex, dayIndex); err == nil {
		log.ClearExercise(exIndex)
		if err := s.setLogRepo.Upsert(ctx, log); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return block, nil
}

var csvHeader = []string{"Week", "Day", "Exercise", "Sets", "Reps", "Percentage", "Notes"}

// ExportCSV flattens a block into denormalized spreadsheet rows.
func (s *blockService) ExportCSV(ctx context.Context, blockID string) ([]byte, error) {
	block, err := s.BlockByID(ctx, blockID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, week := range block.Weeks {
		for _, day := range week.Days {
			for _, ex := range day.Work {
				pct := ""
				if ex.Pct > 0 {
					pct = strconv.Itoa(int(ex.Pct*100 + 0.5))
				}
				row := []string{
					strconv.Itoa(week.WeekIndex + 1),
					day.Title,
					ex.Name,
					strconv.Itoa(ex.Sets),
					strconv.Itoa(ex.Reps),
					pct,
					ex.Description,
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dayKindFromTitle(title string) domain.DayKind {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "accessory"):
		return domain.DayAccessory
	case strings.Contains(t, "combined"):
		return domain.DayCombined
	case strings.Contains(t, "clean"):
		return domain.DayCleanJerk
	case strings.Contains(t, "strength"):
		return domain.DayStrength
	default:
		return domain.DaySnatch
	}
}

// ImportCSV reconstructs a block from exported rows and installs it as the
// profile's current block. Imported blocks carry no seed and cannot be
// regenerated.
func (s *blockService) ImportCSV(ctx context.Context, profileName string, data []byte) (*domain.Block, error) {
	profile, err := s.loadProfile(ctx, profileName)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return nil, ErrBadImportFormat
	}
	for i, h := range csvHeader {
		if !strings.EqualFold(records[0][i], h) {
			return nil, ErrBadImportFormat
		}
	}

	var weeks []domain.WeekPlan
	for _, row := range records[1:] {
		weekNum, err := strconv.Atoi(row[0])
		if err != nil || weekNum < 1 {
			return nil, ErrBadImportFormat
		}
		weekIndex := weekNum - 1
		for len(weeks) <= weekIndex {
			wi := len(weeks)
			weeks = append(weeks, domain.WeekPlan{WeekIndex: wi, Phase: engine.PhaseForWeek(wi)})
		}
		week := &weeks[weekIndex]

		title := row[1]
		var day *domain.DayPlan
		if n := len(week.Days); n > 0 && week.Days[n-1].Title == title {
			day = &week.Days[n-1]
		} else {
			week.Days = append(week.Days, domain.DayPlan{Title: title, Kind: dayKindFromTitle(title)})
			day = &week.Days[len(week.Days)-1]
		}

		sets, err1 := strconv.Atoi(row[3])
		reps, err2 := strconv.Atoi(row[4])
		if err1 != nil || err2 != nil {
			return nil, ErrBadImportFormat
		}
		var pct float64
		if row[5] != "" {
			p, err := strconv.Atoi(row[5])
			if err != nil {
				return nil, ErrBadImportFormat
			}
			pct = float64(p) / 100
		}
		day.Work = append(day.Work, domain.Prescription{
			Name:        row[2],
			Sets:        sets,
			Reps:        reps,
			Pct:         pct,
			Description: row[6],
			Tag:         domain.TagWork,
		})
	}

	ari := engine.BlockARI(weeks)
	block := &domain.Block{
		ProfileName: profileName,
		StartDate:   time.Now(),
		ProgramType: profile.ProgramType,
		BlockLength: len(weeks),
		Weeks:       weeks,
		ARI:         ari,
		KValue:      engine.KValue(ari, profile.Maxes.Of(domain.LiftSnatch)+profile.Maxes.Of(domain.LiftCleanJerk)),
		Current:     true,
	}
	if err := s.blockRepo.ClearCurrent(ctx, profileName); err != nil {
		return nil, err
	}
	id, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		return nil, err
	}
	block.ID = id
	return block, nil
}

// BackupDownloadURL writes a fresh snapshot of the block to object storage
// and returns a presigned URL for it.
func (s *blockService) BackupDownloadURL(ctx context.Context, blockID string) (string, error) {
	if s.backup == nil {
		return "", ErrBackupDisabled
	}
	block, err := s.BlockByID(ctx, blockID)
	if err != nil {
		return "", err
	}
	key, err := s.backup.Upload(ctx, block)
	if err != nil {
		return "", err
	}
	return s.backup.store.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
}
