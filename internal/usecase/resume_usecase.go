package usecase

import (
	"context"
	"io"

	"jobtrack/internal/domain/entity"
)

// UploadResumeInput is a resume file plus the metadata submitted with it.
type UploadResumeInput struct {
	UserID         string   `json:"-"`
	TargetPosition string   `json:"targetPosition" validate:"notblank"`
	Skills         []string `json:"skills"`

	// OriginalName is the client-side file name, used only as a type hint.
	OriginalName string    `json:"-"`
	Size         int64     `json:"-"`
	Content      io.Reader `json:"-"`
}

// ResumeUsecase stores resume files and lists their metadata.
type ResumeUsecase interface {
	UploadResume(ctx context.Context, input *UploadResumeInput) (*entity.Resume, error)
	ListResumes(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Resume], error)
}
