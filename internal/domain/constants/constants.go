// Package constants holds string identifiers shared between layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Object storage providers
const (
	StorageProviderFile  = "file"
	StorageProviderMinio = "minio"
	StorageProviderGCS   = "gcs"
)

// Cookie names carrying the issued tokens
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Token types written to the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Domain event types
const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
	EventApplicationDeleted       = "application.deleted"
	EventInterviewScheduled       = "interview.scheduled"
	EventInterviewDeleted         = "interview.deleted"
	EventResumeUploaded           = "resume.uploaded"
)
