package service

import (
	"crypto/sha256"
	"encoding/hex"

	"jobtrack/internal/domain/entity"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken signs a short-lived token carrying the caller's identity.
	IssueAccessToken(identity entity.Identity) (string, error)

	// IssueRefreshToken signs a long-lived token carrying only the user ID.
	IssueRefreshToken(userID string) (string, error)

	// VerifyAccessToken checks signature, expiry and token type and returns the identity.
	VerifyAccessToken(token string) (*entity.Identity, error)

	// VerifyRefreshToken checks signature, expiry and token type and returns the user ID.
	VerifyRefreshToken(token string) (string, error)
}

// HashRefreshToken derives the value stored in a user's refresh token slot.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
