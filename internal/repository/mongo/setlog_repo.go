package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/repository"
)

const setLogCollectionName = "set_logs"

// mongoSetLogRepository implements repository.SetLogRepository
type mongoSetLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSetLogRepository creates a new SetLog repository.
func NewMongoSetLogRepository(db *mongo.Database) repository.SetLogRepository {
	return &mongoSetLogRepository{
		collection: db.Collection(setLogCollectionName),
	}
}

// Get retrieves the log for one training day.
func (r *mongoSetLogRepository) Get(ctx context.Context, profileName string, weekIndex, dayIndex int) (*domain.DayLog, error) {
	var log domain.DayLog
	filter := bson.M{
		"profileName": profileName,
		"weekIndex":   weekIndex,
		"dayIndex":    dayIndex,
	}
	err := r.collection.FindOne(ctx, filter).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Upsert writes a day log, creating it on first touch. The (profile, week,
// day) triple is the natural key.
func (r *mongoSetLogRepository) Upsert(ctx context.Context, log *domain.DayLog) error {
	if log.ProfileName == "" {
		return errors.New("day log requires profileName")
	}
	log.UpdatedAt = time.Now().UTC()

	filter := bson.M{
		"profileName": log.ProfileName,
		"weekIndex":   log.WeekIndex,
		"dayIndex":    log.DayIndex,
	}
	updateDoc := bson.M{
		"$set": bson.M{
			"entries":     log.Entries,
			"overrides":   log.Overrides,
			"completed":   log.Completed,
			"completedAt": log.CompletedAt,
			"updatedAt":   log.UpdatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, updateDoc, opts)
	return err
}

// ListByProfile retrieves every day log for a profile, ordered by week then
// day.
func (r *mongoSetLogRepository) ListByProfile(ctx context.Context, profileName string) ([]domain.DayLog, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "weekIndex", Value: 1},
		{Key: "dayIndex", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{"profileName": profileName}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.DayLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRecent retrieves the most recently touched day logs, newest first.
// Fatigue scans use this so the working set stays bounded no matter how long
// the training history grows.
func (r *mongoSetLogRepository) ListRecent(ctx context.Context, profileName string, limit int) ([]domain.DayLog, error) {
	if limit <= 0 {
		limit = 60
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"profileName": profileName}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.DayLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteByProfile removes every day log belonging to a profile.
func (r *mongoSetLogRepository) DeleteByProfile(ctx context.Context, profileName string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"profileName": profileName})
	return err
}

// EnsureSetLogIndexes creates necessary indexes. Call during startup.
func EnsureSetLogIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(setLogCollectionName)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "profileName", Value: 1},
				{Key: "weekIndex", Value: 1},
				{Key: "dayIndex", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			// ListRecent query pattern.
			Keys:    bson.D{{Key: "profileName", Value: 1}, {Key: "updatedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
