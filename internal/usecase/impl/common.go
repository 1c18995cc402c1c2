// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/access"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	"github.com/google/uuid"
)

const eventPublishTimeout = 5 * time.Second

// dateLayouts are the accepted encodings of appliedOn and scheduledOn.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses a client supplied date. Values without a zone are read as UTC.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}

// loadOwned fetches a document and rejects callers other than its owner.
// A missing document yields notFound.
func loadOwned[T access.Owned](
	ctx context.Context,
	find func(ctx context.Context, id string) (*T, error),
	id, callerID string,
	notFound *domainerrors.BaseError,
) (*T, error) {
	doc, err := find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.WithStack(notFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document")
	}

	if err := access.Authorize(*doc, callerID); err != nil {
		return nil, err
	}

	return doc, nil
}

// validPage rejects page requests whose page or limit is below one.
func validPage(page entity.PageRequest) error {
	if !page.Valid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.
			WithMessage("page and limit must be positive integers"))
	}

	return nil
}

// trimmed returns a copy of value with surrounding whitespace removed.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}

	out := strings.TrimSpace(*value)

	return &out
}

// cleanSkills trims every skill and drops empty ones.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}

	return out
}

// eventEmitter publishes domain events without failing the request that caused them.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType, userID, resourceID string, attributes map[string]string) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}

	// The request may finish before the broker acknowledges.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := e.publisher.Publish(publishCtx, event); err != nil {
		deliverycontext.LoggerFrom(ctx, e.logger).Warn("Failed to publish domain event",
			slog.String("type", eventType),
			slog.String("resource_id", resourceID),
			slog.Any("error", err),
		)
	}
}
