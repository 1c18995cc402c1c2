package usecase

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// CreateContactInput defines the data required to save a contact.
type CreateContactInput struct {
	UserID          string `json:"-"`
	FirstName       string `json:"firstName" validate:"notblank"`
	LastName        string `json:"lastName" validate:"notblank"`
	Email           string `json:"email" validate:"notblank,contactemail"`
	CompanyName     string `json:"companyName" validate:"notblank"`
	Role            string `json:"role" validate:"notblank"`
	PhoneNumber     string `json:"phoneNumber" validate:"notblank,phone"`
	LinkedInProfile string `json:"linkedInProfile"`
}

// UpdateContactInput carries a partial contact update.
type UpdateContactInput struct {
	ID     string   `json:"-"`
	UserID string   `json:"-"`
	Fields []string `json:"-"`

	FirstName       *string `json:"firstName" validate:"omitnil,notblank"`
	LastName        *string `json:"lastName" validate:"omitnil,notblank"`
	Email           *string `json:"email" validate:"omitnil,notblank,contactemail"`
	PhoneNumber     *string `json:"phoneNumber" validate:"omitnil,phone"`
	LinkedInProfile *string `json:"linkedInProfile"`
}

// ContactUsecase defines the owner-scoped operations on contacts.
type ContactUsecase interface {
	CreateContact(ctx context.Context, input *CreateContactInput) (*entity.Contact, error)
	GetContact(ctx context.Context, id, userID string) (*entity.Contact, error)
	UpdateContact(ctx context.Context, input *UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, id, userID string) (*entity.Contact, error)
	ListContacts(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Contact], error)
}
