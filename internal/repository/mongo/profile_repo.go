package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/repository"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new Profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Create inserts a new profile. Profile names are unique.
func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	if profile.Name == "" {
		return primitive.NilObjectID, errors.New("profile requires a name")
	}
	profile.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted profile ID")
	}
	return insertedID, nil
}

// GetByName retrieves a single profile by its unique name.
func (r *mongoProfileRepository) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// List retrieves all profiles sorted by name.
func (r *mongoProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []domain.Profile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update replaces the mutable fields of a stored profile.
func (r *mongoProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if profile.Name == "" {
		return errors.New("profile name is required for update")
	}

	updateDoc := bson.M{
		"$set": bson.M{
			"units":             profile.Units,
			"programType":       profile.ProgramType,
			"athleteMode":       profile.AthleteMode,
			"trainingAge":       profile.TrainingAge,
			"age":               profile.Age,
			"recovery":          profile.Recovery,
			"limiter":           profile.Limiter,
			"injuries":          profile.Injuries,
			"mainDays":          profile.MainDays,
			"accessoryDays":     profile.AccessoryDays,
			"duration":          profile.Duration,
			"restDuration":      profile.RestDuration,
			"blockLength":       profile.BlockLength,
			"transitionWeeks":   profile.TransitionWeeks,
			"transitionProfile": profile.TransitionProfile,
			"volumePref":        profile.VolumePref,
			"includeBlocks":     profile.IncludeBlocks,
			"maxes":             profile.Maxes,
			"workingMaxes":      profile.WorkingMaxes,
			"liftAdjustments":   profile.LiftAdjustments,
			"readinessLog":      profile.ReadinessLog,
			"accessoryWeights":  profile.AccessoryWeights,
			"lastBlockSeed":     profile.LastBlockSeed,
			"updatedAt":         time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"name": profile.Name}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a profile by name.
func (r *mongoProfileRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("profile name is required for deletion")
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProfileIndexes creates necessary indexes. Call during startup.
func EnsureProfileIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(profileCollectionName)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
