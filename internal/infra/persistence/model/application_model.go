package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationModel mirrors a document of the 'applications' collection.
type ApplicationModel struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	UserID              primitive.ObjectID `bson:"userId"`
	CompanyName         string             `bson:"companyName"`
	Position            string             `bson:"position"`
	JobLink             string             `bson:"jobLink"`
	ApplicationStatus   string             `bson:"applicationStatus"`
	ResumeUploaded      string             `bson:"resumeUploaded"`
	CoverLetterUploaded string             `bson:"coverLetterUploaded"`
	Notes               string             `bson:"notes"`
	AppliedOn           time.Time          `bson:"appliedOn"`
	CreatedAt           time.Time          `bson:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt"`
}

// CollectionName explicitly sets the collection name.
func (ApplicationModel) CollectionName() string {
	return "applications"
}
