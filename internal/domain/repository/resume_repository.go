package repository

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// ResumeRepository persists resume metadata.
type ResumeRepository interface {
	Create(ctx context.Context, resume *entity.Resume) error
	List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Resume], error)
}
