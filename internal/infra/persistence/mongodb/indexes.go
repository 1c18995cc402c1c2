package mongodb

import (
	"context"

	"jobtrack/internal/errors"
	"jobtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexModels lists the indexes each collection must carry.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		model.UserModel{}.CollectionName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		},
		model.ContactModel{}.CollectionName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_created")},
		},
		model.ApplicationModel{}.CollectionName(): {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "appliedOn", Value: -1}}, Options: options.Index().SetName("owner_applied")},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "applicationStatus", Value: 1}}, Options: options.Index().SetName("owner_status")},
		},
		model.InterviewRoundModel{}.CollectionName(): {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "scheduledOn", Value: 1}}, Options: options.Index().SetName("owner_scheduled")},
		},
		model.ResumeModel{}.CollectionName(): {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "uploadedOn", Value: -1}}, Options: options.Index().SetName("owner_uploaded")},
		},
	}
}

// EnsureIndexes creates any missing index. Existing indexes with the same keys are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexModels() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
