package repository

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// ApplicationRepository persists job applications.
type ApplicationRepository interface {
	OwnedRepository[entity.Application, entity.ApplicationPatch]

	// List returns one page of the applications matching filter, newest application date first.
	List(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) (*entity.Page[entity.Application], error)

	// Count returns how many applications match filter.
	Count(ctx context.Context, filter entity.ApplicationFilter) (int64, error)
}
