package entity

import (
	"time"

	"jobtrack/internal/domain/access"
)

// Contact is a person the user met during their search, usually a recruiter or referrer.
type Contact struct {
	ID              string    `json:"_id"`
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"` // Unique across all contacts.
	CompanyName     string    `json:"companyName"`
	Role            string    `json:"role"`
	PhoneNumber     string    `json:"phoneNumber"`
	LinkedInProfile string    `json:"linkedInProfile"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ContactPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	PhoneNumber     *string
	LinkedInProfile *string
}

// ContactUpdatableFields lists the keys accepted by a contact update.
var ContactUpdatableFields = access.NewAllowList(
	"firstName",
	"lastName",
	"email",
	"phoneNumber",
	"linkedInProfile",
)

// OwnerID returns the user that owns the contact.
func (c Contact) OwnerID() string { return c.UserID }
