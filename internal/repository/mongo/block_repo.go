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

const blockCollectionName = "blocks"

// mongoBlockRepository implements repository.BlockRepository
type mongoBlockRepository struct {
	collection *mongo.Collection
}

// NewMongoBlockRepository creates a new Block repository.
func NewMongoBlockRepository(db *mongo.Database) repository.BlockRepository {
	return &mongoBlockRepository{
		collection: db.Collection(blockCollectionName),
	}
}

// Create inserts a new block.
func (r *mongoBlockRepository) Create(ctx context.Context, block *domain.Block) (primitive.ObjectID, error) {
	if block.ProfileName == "" || len(block.Weeks) == 0 {
		return primitive.NilObjectID, errors.New("block requires profileName and at least one week")
	}
	block.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	block.CreatedAt = now
	block.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, block)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted block ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single block by its ID.
func (r *mongoBlockRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Block, error) {
	var block domain.Block
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &block, nil
}

// GetCurrent retrieves the profile's active block.
func (r *mongoBlockRepository) GetCurrent(ctx context.Context, profileName string) (*domain.Block, error) {
	var block domain.Block
	filter := bson.M{"profileName": profileName, "current": true}
	err := r.collection.FindOne(ctx, filter).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &block, nil
}

// ListByProfile retrieves a profile's block history, newest first.
func (r *mongoBlockRepository) ListByProfile(ctx context.Context, profileName string, limit int) ([]domain.Block, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"profileName": profileName}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []domain.Block
	if err = cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Update replaces a block's plan content and current flag.
func (r *mongoBlockRepository) Update(ctx context.Context, block *domain.Block) error {
	if block.ID == primitive.NilObjectID {
		return errors.New("block ID is required for update")
	}
	updateDoc := bson.M{
		"$set": bson.M{
			"seed":        block.Seed,
			"programType": block.ProgramType,
			"blockLength": block.BlockLength,
			"weeks":       block.Weeks,
			"ari":         block.ARI,
			"kValue":      block.KValue,
			"current":     block.Current,
			"updatedAt":   time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": block.ID}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ClearCurrent demotes any active block for the profile. Generating a new
// block calls this first so the one-current invariant holds.
func (r *mongoBlockRepository) ClearCurrent(ctx context.Context, profileName string) error {
	filter := bson.M{"profileName": profileName, "current": true}
	update := bson.M{"$set": bson.M{"current": false, "updatedAt": time.Now().UTC()}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

// DeleteByProfile removes every block belonging to a profile.
func (r *mongoBlockRepository) DeleteByProfile(ctx context.Context, profileName string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"profileName": profileName})
	return err
}

// EnsureBlockIndexes creates necessary indexes. Call during startup.
func EnsureBlockIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(blockCollectionName)
	indexes := []mongo.IndexModel{
		{
			// Main query pattern: the profile's current block.
			Keys:    bson.D{{Key: "profileName", Value: 1}, {Key: "current", Value: 1}},
			Options: options.Index(),
		},
		{
			// History listing.
			Keys:    bson.D{{Key: "profileName", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
