// Package model holds the BSON documents stored in MongoDB.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors a document of the 'users' collection.
type UserModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Email           string             `bson:"email"` // unique index
	Password        string             `bson:"password"`
	RefreshToken    *string            `bson:"refreshToken"` // SHA-256 of the active refresh token, null when logged out
	Skills          []string           `bson:"skills"`
	AspiringRole    string             `bson:"aspiringRole"`
	ExperienceLevel string             `bson:"experienceLevel"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// CollectionName explicitly sets the collection name.
func (UserModel) CollectionName() string {
	return "users"
}
