// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName       string   `json:"firstName" validate:"notblank"`
	LastName        string   `json:"lastName" validate:"notblank"`
	Email           string   `json:"email" validate:"notblank"`
	Password        string   `json:"password" validate:"notblank"`
	AspiringRole    string   `json:"aspiringRole" validate:"notblank"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel" validate:"omitempty,experience"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// UpdateProfileInput carries a partial profile update. Fields lists the keys
// present in the request body, whether or not they decoded to a known field.
type UpdateProfileInput struct {
	UserID string   `json:"-"`
	Fields []string `json:"-"`

	FirstName       *string   `json:"firstName" validate:"omitnil,notblank"`
	LastName        *string   `json:"lastName" validate:"omitnil,notblank"`
	Skills          *[]string `json:"skills"`
	AspiringRole    *string   `json:"aspiringRole" validate:"omitnil,notblank"`
	ExperienceLevel *string   `json:"experienceLevel" validate:"omitnil,experience"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	TokenPair
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// RefreshToken rotates the caller's single active refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID string) error
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
