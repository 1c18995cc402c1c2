// Package handler contains the HTTP handlers of the event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"jobtrack/config"
	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed ID token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives domain events pushed by the local publisher or a Pub/Sub push subscription.
type PushHandler struct {
	verifyPushAuth bool
	validate       TokenValidator
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; locally the publisher posts without credentials
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.IsProduction()

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges a pushed event. Malformed messages get 400 so the
// push subscription dead-letters them instead of retrying forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	if !knownEventType(event.Type) {
		reqLogger.Warn("[Worker] Ignoring unknown event type",
			slog.String("event_id", event.EventID),
			slog.String("type", event.Type),
		)

		return c.NoContent(http.StatusOK)
	}

	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("user_id", event.UserID),
		slog.String("resource_id", event.ResourceID),
		slog.Time("occurred_at", event.OccurredAt),
	}
	for key, value := range event.Attributes {
		attrs = append(attrs, slog.String(key, value))
	}
	reqLogger.Info("[Worker] Activity recorded", attrs...)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event body, then the
// X-Request-Id header, and finally generates one.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DomainEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func knownEventType(eventType string) bool {
	switch eventType {
	case constants.EventApplicationCreated,
		constants.EventApplicationStatusChanged,
		constants.EventApplicationDeleted,
		constants.EventInterviewScheduled,
		constants.EventInterviewDeleted,
		constants.EventResumeUploaded:
		return true
	default:
		return false
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	proto := "https"
	if req.TLS == nil {
		proto = "http"
	}
	audience := proto + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
