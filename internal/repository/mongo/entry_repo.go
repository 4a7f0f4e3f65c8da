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

const entryCollectionName = "entries"

// entryDocument wraps a diary entry with its owning user and date key.
// (userId, date) is unique; upserts are last-write-wins by design.
type entryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Date      string             `bson:"date"`
	Content   domain.Entry       `bson:"content"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// mongoEntryRepository implements repository.EntryRepository using MongoDB.
type mongoEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoEntryRepository creates a new instance of mongoEntryRepository.
func NewMongoEntryRepository(db *mongo.Database) repository.EntryRepository {
	return &mongoEntryRepository{
		collection: db.Collection(entryCollectionName),
	}
}

// Upsert writes the full entry for (user, date), replacing any previous
// version. There is no conflict detection; concurrent sessions clobber each
// other on the next push.
func (r *mongoEntryRepository) Upsert(ctx context.Context, userID primitive.ObjectID, entry domain.Entry) error {
	if entry.Date == "" {
		return errors.New("entry date is required")
	}

	filter := bson.M{"userId": userID, "date": entry.Date}
	update := bson.M{
		"$set": bson.M{
			"content":   entry,
			"updatedAt": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"userId": userID,
			"date":   entry.Date,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByDate retrieves one entry by its (user, date) key.
func (r *mongoEntryRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.Entry, error) {
	var doc entryDocument
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Content, nil
}

// ListAll returns the user's complete entry snapshot keyed by ISO date,
// ordered by date at the cursor level (the map drops ordering; the analytics
// layer re-derives day order from the reference instant).
func (r *mongoEntryRepository) ListAll(ctx context.Context, userID primitive.ObjectID) (domain.Snapshot, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	snapshot := make(domain.Snapshot)
	for cursor.Next(ctx) {
		var doc entryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		snapshot[doc.Date] = doc.Content
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// EnsureEntryIndexes creates necessary indexes for the entries collection.
// Call this once during application startup.
func EnsureEntryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
