package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactModel mirrors a document of the 'contacts' collection.
type ContactModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"userId"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Email           string             `bson:"email"` // unique index
	CompanyName     string             `bson:"companyName"`
	Role            string             `bson:"role"`
	PhoneNumber     string             `bson:"phoneNumber"`
	LinkedInProfile string             `bson:"linkedInProfile"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// CollectionName explicitly sets the collection name.
func (ContactModel) CollectionName() string {
	return "contacts"
}
