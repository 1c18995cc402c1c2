// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches the requested ID.
	// A malformed ID is reported the same way.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// OwnedRepository is the document lifecycle shared by every user-owned collection.
type OwnedRepository[T any, P any] interface {
	// Create inserts doc and fills in its ID and timestamps.
	Create(ctx context.Context, doc *T) error

	// FindByID loads a single document.
	FindByID(ctx context.Context, id string) (*T, error)

	// Update applies the non-nil fields of patch and returns the updated document.
	Update(ctx context.Context, id string, patch *P) (*T, error)

	// Delete removes the document and returns its last state.
	Delete(ctx context.Context, id string) (*T, error)
}
