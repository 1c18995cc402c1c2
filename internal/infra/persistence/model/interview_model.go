package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InterviewRoundModel mirrors a document of the 'interviewrounds' collection.
type InterviewRoundModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId"`
	Position       string             `bson:"position"`
	CompanyName    string             `bson:"companyName"`
	InterviewRound string             `bson:"interviewRound"`
	RoundDetails   string             `bson:"roundDetails"`
	ScheduledOn    time.Time          `bson:"scheduledOn"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// CollectionName explicitly sets the collection name.
func (InterviewRoundModel) CollectionName() string {
	return "interviewrounds"
}
