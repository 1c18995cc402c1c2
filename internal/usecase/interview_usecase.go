package usecase

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// CreateInterviewInput defines the data required to schedule an interview round.
type CreateInterviewInput struct {
	UserID         string `json:"-"`
	Position       string `json:"position" validate:"notblank"`
	CompanyName    string `json:"companyName" validate:"notblank"`
	InterviewRound string `json:"interviewRound" validate:"notblank,roundtype"`
	RoundDetails   string `json:"roundDetails"`
	ScheduledOn    string `json:"scheduledOn" validate:"notblank"`
}

// UpdateInterviewInput carries a partial interview round update.
type UpdateInterviewInput struct {
	ID     string   `json:"-"`
	UserID string   `json:"-"`
	Fields []string `json:"-"`

	Position       *string `json:"position" validate:"omitnil,notblank"`
	CompanyName    *string `json:"companyName" validate:"omitnil,notblank"`
	InterviewRound *string `json:"interviewRound" validate:"omitnil,roundtype"`
	RoundDetails   *string `json:"roundDetails"`
	ScheduledOn    *string `json:"scheduledOn" validate:"omitnil,notblank"`
}

// InterviewUsecase defines the owner-scoped operations on interview rounds.
type InterviewUsecase interface {
	CreateInterview(ctx context.Context, input *CreateInterviewInput) (*entity.InterviewRound, error)
	GetInterview(ctx context.Context, id, userID string) (*entity.InterviewRound, error)
	UpdateInterview(ctx context.Context, input *UpdateInterviewInput) (*entity.InterviewRound, error)
	DeleteInterview(ctx context.Context, id, userID string) (*entity.InterviewRound, error)
	// ListInterviews returns rounds scheduled now or later, soonest first.
	ListInterviews(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error)
	// ListArchivedInterviews returns rounds that already took place, most recent first.
	ListArchivedInterviews(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error)
}
