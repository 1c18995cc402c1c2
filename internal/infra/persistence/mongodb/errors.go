package mongodb

import (
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// translateError maps driver errors onto repository sentinels.
func translateError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.WithStack(repository.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(repository.ErrDuplicateKey, err.Error())
	default:
		return errors.Wrap(err, action)
	}
}

// parseID converts a hex ID. A malformed ID cannot match any document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.WithStack(repository.ErrNotFound)
	}

	return oid, nil
}

// parseOwnerID converts the owner reference of a document being written.
func parseOwnerID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "invalid owner id %q", id)
	}

	return oid, nil
}
