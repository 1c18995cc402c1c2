package entity

import (
	"time"

	"jobtrack/internal/domain/access"
)

// ApplicationStatus tracks where an application stands in the hiring process.
type ApplicationStatus string

const (
	StatusApplied       ApplicationStatus = "Applied"
	StatusInterviewing  ApplicationStatus = "Interviewing"
	StatusOfferReceived ApplicationStatus = "Offer Received"
	StatusAccepted      ApplicationStatus = "Accepted"
	StatusRejected      ApplicationStatus = "Rejected"
	StatusWithdrawn     ApplicationStatus = "Withdrawn"
)

// ApplicationStatuses lists every valid status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusInterviewing,
	StatusOfferReceived,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// ArchivedStatuses are terminal: the application no longer needs attention.
var ArchivedStatuses = []ApplicationStatus{
	StatusRejected,
	StatusAccepted,
	StatusWithdrawn,
}

// Valid reports whether the status is one of the known values.
func (s ApplicationStatus) Valid() bool {
	for _, status := range ApplicationStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// Application is a single job application owned by a user.
type Application struct {
	ID                  string            `json:"_id"`
	UserID              string            `json:"userId"`              // Owner, immutable after creation.
	CompanyName         string            `json:"companyName"`
	Position            string            `json:"position"`
	JobLink             string            `json:"jobLink"`
	ApplicationStatus   ApplicationStatus `json:"applicationStatus"`
	ResumeUploaded      string            `json:"resumeUploaded"`      // Link to the resume that was sent.
	CoverLetterUploaded string            `json:"coverLetterUploaded"` // Link to the cover letter, if any.
	Notes               string            `json:"notes"`
	AppliedOn           time.Time         `json:"appliedOn"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// ApplicationPatch holds the validated fields of an application update.
type ApplicationPatch struct {
	CompanyName         *string
	Position            *string
	JobLink             *string
	ApplicationStatus   *ApplicationStatus
	ResumeUploaded      *string
	CoverLetterUploaded *string
	Notes               *string
	AppliedOn           *time.Time
}

// ApplicationUpdatableFields lists the keys accepted by an application update.
var ApplicationUpdatableFields = access.NewAllowList(
	"companyName",
	"position",
	"jobLink",
	"applicationStatus",
	"resumeUploaded",
	"coverLetterUploaded",
	"notes",
	"appliedOn",
)

// ApplicationFilter narrows an owner's application list.
type ApplicationFilter struct {
	UserID   string
	Statuses []ApplicationStatus // Empty means any status.
}

// OwnerID returns the user that owns the application.
func (a Application) OwnerID() string { return a.UserID }
