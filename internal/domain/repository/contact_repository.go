package repository

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// ContactRepository persists contacts. Email is unique across all users.
type ContactRepository interface {
	OwnedRepository[entity.Contact, entity.ContactPatch]

	// List returns one page of the user's contacts, most recently added first.
	List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Contact], error)
}
