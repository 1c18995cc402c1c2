package repository

import (
	"context"
	"errors"

	"jobtrack/internal/domain/entity"
)

// ErrRefreshTokenMismatch is returned when a rotation finds a different token in the slot.
var ErrRefreshTokenMismatch = errors.New("refresh token mismatch")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. A taken email yields ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalised email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of patch.
	UpdateProfile(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error)

	// SetRefreshToken overwrites the refresh token slot unconditionally.
	SetRefreshToken(ctx context.Context, id, tokenHash string) error

	// RotateRefreshToken replaces expectedHash with nextHash atomically.
	// It returns ErrRefreshTokenMismatch when the slot holds anything else.
	RotateRefreshToken(ctx context.Context, id, expectedHash, nextHash string) error

	// ClearRefreshToken empties the refresh token slot.
	ClearRefreshToken(ctx context.Context, id string) error
}
