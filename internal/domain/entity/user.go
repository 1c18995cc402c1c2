// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"jobtrack/internal/domain/access"
)

// ExperienceLevel is the seniority a user is aiming for.
type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "Entry"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceSenior       ExperienceLevel = "Senior"
	ExperiencePrincipal    ExperienceLevel = "Principal"
)

// Valid reports whether the level is one of the known values.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceIntermediate, ExperienceSenior, ExperiencePrincipal:
		return true
	default:
		return false
	}
}

// User is the root entity: every other document is owned by exactly one user.
type User struct {
	ID               string          `json:"_id"`             // Hex encoded document ID.
	FirstName        string          `json:"firstName"`       // Given name.
	LastName         string          `json:"lastName"`        // Family name.
	Email            string          `json:"email"`           // Unique, lowercased login identifier.
	PasswordHash     string          `json:"-"`               // bcrypt hash, never serialised.
	RefreshTokenHash string          `json:"-"`               // SHA-256 of the single active refresh token, never serialised.
	Skills           []string        `json:"skills"`          // Free-form skill tags.
	AspiringRole     string          `json:"aspiringRole"`    // The role the user is applying for.
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"` // Target seniority.
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Identity returns the claims carried by an access token for this user.
func (u *User) Identity() Identity {
	return Identity{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserPatch carries the profile fields a user may change on their own record.
type UserPatch struct {
	FirstName       *string
	LastName        *string
	Skills          *[]string
	AspiringRole    *string
	ExperienceLevel *ExperienceLevel
}

// UserProfileFields lists the keys accepted by a profile update.
var UserProfileFields = access.NewAllowList(
	"firstName",
	"lastName",
	"skills",
	"aspiringRole",
	"experienceLevel",
)
