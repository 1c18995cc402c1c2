package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobtrack/config"
	deliverycontext "jobtrack/internal/delivery/context"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFrom(c.Request().Context())
		assert.NotNil(t, deliverycontext.LoggerFrom(c.Request().Context(), nil))

		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "client-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-123", deliverycontext.RequestID(c))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_LogsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/contacts/x", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrContactNotFound)
	})

	assert.Error(t, handler(c))
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}
