package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a diary account. Sign-in is passwordless: requesting a login link
// stores a short-lived one-time token hash; verifying it yields a JWT.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"` // unique
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Pending magic-link state. Never exposed via JSON.
	LoginTokenHash   string    `bson:"loginTokenHash,omitempty" json:"-"`
	LoginTokenExpiry time.Time `bson:"loginTokenExpiry,omitempty" json:"-"`
}

// HasPendingLogin reports whether an unexpired magic-link token exists.
func (u *User) HasPendingLogin(now time.Time) bool {
	return u.LoginTokenHash != "" && now.Before(u.LoginTokenExpiry)
}
