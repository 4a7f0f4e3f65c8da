package repository

import (
	"context"
	"time"

	"peakform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetLoginToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error
	ClearLoginToken(ctx context.Context, id primitive.ObjectID) error
}

// EntryRepository defines the interface for the per-user diary entry store.
// Entries are keyed by (user, ISO date); Upsert is last-write-wins.
type EntryRepository interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, entry domain.Entry) error
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.Entry, error)
	// ListAll returns the user's full snapshot keyed by date.
	ListAll(ctx context.Context, userID primitive.ObjectID) (domain.Snapshot, error)
}

// SettingsRepository defines the interface for the per-user settings record.
type SettingsRepository interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, settings domain.Settings) error
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Settings, error)
}
