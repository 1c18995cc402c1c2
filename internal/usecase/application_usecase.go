package usecase

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// CreateApplicationInput defines the data required to track a new job application.
type CreateApplicationInput struct {
	UserID              string `json:"-"`
	CompanyName         string `json:"companyName" validate:"notblank"`
	Position            string `json:"position" validate:"notblank"`
	JobLink             string `json:"jobLink"`
	ApplicationStatus   string `json:"applicationStatus" validate:"omitempty,appstatus"`
	ResumeUploaded      string `json:"resumeUploaded" validate:"notblank"`
	CoverLetterUploaded string `json:"coverLetterUploaded"`
	Notes               string `json:"notes"`
	AppliedOn           string `json:"appliedOn" validate:"notblank"`
}

// UpdateApplicationInput carries a partial application update.
type UpdateApplicationInput struct {
	ID     string   `json:"-"`
	UserID string   `json:"-"`
	Fields []string `json:"-"`

	CompanyName         *string `json:"companyName" validate:"omitnil,notblank"`
	Position            *string `json:"position" validate:"omitnil,notblank"`
	JobLink             *string `json:"jobLink"`
	ApplicationStatus   *string `json:"applicationStatus" validate:"omitnil,appstatus"`
	ResumeUploaded      *string `json:"resumeUploaded" validate:"omitnil,notblank"`
	CoverLetterUploaded *string `json:"coverLetterUploaded"`
	Notes               *string `json:"notes"`
	AppliedOn           *string `json:"appliedOn" validate:"omitnil,notblank"`
}

// ListApplicationsInput selects one page of the caller's applications.
type ListApplicationsInput struct {
	UserID string
	Status string // Optional; must be one of the known statuses when set.
	Page   entity.PageRequest
}

// ApplicationUsecase defines the owner-scoped operations on job applications.
type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, input *CreateApplicationInput) (*entity.Application, error)
	GetApplication(ctx context.Context, id, userID string) (*entity.Application, error)
	UpdateApplication(ctx context.Context, input *UpdateApplicationInput) (*entity.Application, error)
	DeleteApplication(ctx context.Context, id, userID string) (*entity.Application, error)
	ListApplications(ctx context.Context, input *ListApplicationsInput) (*entity.Page[entity.Application], error)
	ListArchivedApplications(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Application], error)
	CountArchivedApplications(ctx context.Context, userID string) (int64, error)
}
