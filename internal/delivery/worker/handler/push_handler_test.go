package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/config"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) *PushHandler {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func pushBody(t *testing.T, event *service.DomainEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_AcknowledgesKnownEvent(t *testing.T) {
	h := createTestPushHandler(t, nil)

	rec := doPush(h, pushBody(t, &service.DomainEvent{
		EventID:    "evt-1",
		Type:       constants.EventApplicationCreated,
		UserID:     "u-1",
		ResourceID: "app-1",
		OccurredAt: time.Now(),
	}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AcknowledgesUnknownEvent(t *testing.T) {
	h := createTestPushHandler(t, nil)

	rec := doPush(h, pushBody(t, &service.DomainEvent{EventID: "evt-2", Type: "contact.exported"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h := createTestPushHandler(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"***"}}`},
		{name: "event not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func productionGoogleConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = config.EnvProduction

	return cfg
}

func TestPushHandler_VerifiesTokenForGoogleInProduction(t *testing.T) {
	h := createTestPushHandler(t, productionGoogleConfig())
	require.True(t, h.verifyPushAuth)

	body := pushBody(t, &service.DomainEvent{EventID: "evt-3", Type: constants.EventResumeUploaded})

	rec := doPush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("token expired")
	}
	rec = doPush(h, body, map[string]string{echo.HeaderAuthorization: "Bearer abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var audience string
	h.validate = func(_ context.Context, _ string, aud string) (*idtoken.Payload, error) {
		audience = aud
		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}
	rec = doPush(h, body, map[string]string{echo.HeaderAuthorization: "Bearer abc"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/events", audience)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	h := createTestPushHandler(t, productionGoogleConfig())
	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := doPush(h, pushBody(t, &service.DomainEvent{EventID: "evt-4", Type: constants.EventInterviewDeleted}),
		map[string]string{echo.HeaderAuthorization: "Bearer abc"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID_FallsBackToEvent(t *testing.T) {
	var msg PubSubMessage
	got := extractRequestID(context.Background(), &msg, &service.DomainEvent{RequestID: "from-event"})
	assert.Equal(t, "from-event", got)

	got = extractRequestID(context.Background(), &msg, &service.DomainEvent{})
	assert.Len(t, got, 36)
}
