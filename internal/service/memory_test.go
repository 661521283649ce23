package service

import (
	"context"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type memProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *memProfileRepo) Create(_ context.Context, p *domain.Profile) (primitive.ObjectID, error) {
	if _, ok := r.profiles[p.Name]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	cp := *p
	cp.ID = primitive.NewObjectID()
	r.profiles[p.Name] = &cp
	return cp.ID, nil
}

func (r *memProfileRepo) GetByName(_ context.Context, name string) (*domain.Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	if _, ok := r.profiles[p.Name]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.profiles[p.Name] = &cp
	return nil
}

func (r *memProfileRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.profiles[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, name)
	return nil
}

type memBlockRepo struct {
	blocks map[primitive.ObjectID]*domain.Block
}

func newMemBlockRepo() *memBlockRepo {
	return &memBlockRepo{blocks: map[primitive.ObjectID]*domain.Block{}}
}

func (r *memBlockRepo) Create(_ context.Context, b *domain.Block) (primitive.ObjectID, error) {
	cp := *b
	cp.ID = primitive.NewObjectID()
	r.blocks[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memBlockRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Block, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBlockRepo) GetCurrent(_ context.Context, profileName string) (*domain.Block, error) {
	for _, b := range r.blocks {
		if b.ProfileName == profileName && b.Current {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memBlockRepo) ListByProfile(_ context.Context, profileName string, limit int) ([]domain.Block, error) {
	var out []domain.Block
	for _, b := range r.blocks {
		if b.ProfileName == profileName {
			out = append(out, *b)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBlockRepo) Update(_ context.Context, b *domain.Block) error {
	if _, ok := r.blocks[b.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *b
	r.blocks[b.ID] = &cp
	return nil
}

func (r *memBlockRepo) ClearCurrent(_ context.Context, profileName string) error {
	for _, b := range r.blocks {
		if b.ProfileName == profileName {
			b.Current = false
		}
	}
	return nil
}

func (r *memBlockRepo) DeleteByProfile(_ context.Context, profileName string) error {
	for id, b := range r.blocks {
		if b.ProfileName == profileName {
			delete(r.blocks, id)
		}
	}
	return nil
}

type logKey struct {
	name      string
	week, day int
}

type memSetLogRepo struct {
	logs map[logKey]*domain.DayLog
}

func newMemSetLogRepo() *memSetLogRepo {
	return &memSetLogRepo{logs: map[logKey]*domain.DayLog{}}
}

func (r *memSetLogRepo) Get(_ context.Context, profileName string, weekIndex, dayIndex int) (*domain.DayLog, error) {
	l, ok := r.logs[logKey{profileName, weekIndex, dayIndex}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memSetLogRepo) Upsert(_ context.Context, l *domain.DayLog) error {
	cp := *l
	r.logs[logKey{l.ProfileName, l.WeekIndex, l.DayIndex}] = &cp
	return nil
}

func (r *memSetLogRepo) ListByProfile(_ context.Context, profileName string) ([]domain.DayLog, error) {
	var out []domain.DayLog
	for _, l := range r.logs {
		if l.ProfileName == profileName {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memSetLogRepo) ListRecent(_ context.Context, profileName string, limit int) ([]domain.DayLog, error) {
	out, _ := r.ListByProfile(context.Background(), profileName)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memSetLogRepo) DeleteByProfile(_ context.Context, profileName string) error {
	for k := range r.logs {
		if k.name == profileName {
			delete(r.logs, k)
		}
	}
	return nil
}
