package service

import (
	"context"
	"time"
)

// DomainEvent describes a change to a user's job search, published for async consumers.
type DomainEvent struct {
	EventID    string            `json:"eventId"`
	Type       string            `json:"type"`
	RequestID  string            `json:"requestId,omitempty"` // For distributed tracing
	UserID     string            `json:"userId"`
	ResourceID string            `json:"resourceId"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
