package repository

import (
	"context"

	"jobtrack/internal/domain/entity"
)

// InterviewRepository persists interview rounds.
type InterviewRepository interface {
	OwnedRepository[entity.InterviewRound, entity.InterviewRoundPatch]

	// List returns one page of rounds inside the filter window. Upcoming rounds are
	// ordered soonest first, past rounds most recent first.
	List(ctx context.Context, filter entity.InterviewFilter, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error)
}
