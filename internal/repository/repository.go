package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/oly-planner/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for interacting with athlete
// profile data. Profile names are unique.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error)
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, name string) error
}

// BlockRepository defines the interface for interacting with training block
// data. A profile has at most one current block; superseded blocks stay
// around as history.
type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Block, error)
	GetCurrent(ctx context.Context, profileName string) (*domain.Block, error)
	ListByProfile(ctx context.Context, profileName string, limit int) ([]domain.Block, error)
	Update(ctx context.Context, block *domain.Block) error
	ClearCurrent(ctx context.Context, profileName string) error
	DeleteByProfile(ctx context.Context, profileName string) error
}

// SetLogRepository defines the interface for interacting with per-day set
// logs. Logs are keyed by (profile, week, day) and survive block
// regeneration.
type SetLogRepository interface {
	Get(ctx context.Context, profileName string, weekIndex, dayIndex int) (*domain.DayLog, error)
	Upsert(ctx context.Context, log *domain.DayLog) error
	ListByProfile(ctx context.Context, profileName string) ([]domain.DayLog, error)
	ListRecent(ctx context.Context, profileName string, limit int) ([]domain.DayLog, error)
	DeleteByProfile(ctx context.Context, profileName string) error
}
