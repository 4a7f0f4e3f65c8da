package mongo

import (
	"context"
	"errors"
	"time"

	"peakform/internal/domain"
	"peakform/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "settings"

// settingsDocument holds the single per-user settings record.
type settingsDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Content   domain.Settings    `bson:"content"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// mongoSettingsRepository implements repository.SettingsRepository using MongoDB.
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new instance of mongoSettingsRepository.
func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &mongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// Upsert replaces the user's settings record.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, userID primitive.ObjectID, settings domain.Settings) error {
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			"content":   settings,
			"updatedAt": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"userId": userID},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Get retrieves the user's settings record.
func (r *mongoSettingsRepository) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error) {
	var doc settingsDocument
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Content, nil
}

// EnsureSettingsIndexes creates necessary indexes for the settings collection.
// Call this once during application startup.
func EnsureSettingsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
