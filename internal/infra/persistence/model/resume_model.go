package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResumeModel mirrors a document of the 'resumes' collection.
type ResumeModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId"`
	FileName       string             `bson:"fileName"`
	TargetPosition string             `bson:"targetPosition"`
	Skills         []string           `bson:"skills"`
	ResumeLink     string             `bson:"resumeLink"`
	StorageKey     string             `bson:"storageKey"`
	UploadedOn     time.Time          `bson:"uploadedOn"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// CollectionName explicitly sets the collection name.
func (ResumeModel) CollectionName() string {
	return "resumes"
}
