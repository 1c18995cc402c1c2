package context

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestBindRequest(t *testing.T) {
	c := newTestContext()
	assert.Empty(t, RequestID(c))
	assert.Empty(t, RequestIDFrom(c.Request().Context()))

	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	BindRequest(c, "req-1", scoped)

	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", RequestIDFrom(c.Request().Context()))
	assert.Same(t, scoped, LoggerFrom(c.Request().Context(), nil))
}

func TestLoggerFrom_Fallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Nil(t, LoggerFrom(context.Background(), nil))

	c := newTestContext()
	BindRequest(c, "req-1", nil)
	assert.Same(t, fallback, LoggerFrom(c.Request().Context(), fallback))
}

func TestSetCaller(t *testing.T) {
	c := newTestContext()

	_, ok := Caller(c)
	assert.False(t, ok)

	caller := &entity.Identity{UserID: "u1", Email: "a@b.co"}
	SetCaller(c, caller)

	got, ok := Caller(c)
	require.True(t, ok)
	assert.Equal(t, caller, got)
}

func TestSetCaller_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newTestContext()
	BindRequest(c, "req-1", slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-1")))

	SetCaller(c, &entity.Identity{UserID: "u1"})
	LoggerFrom(c.Request().Context(), nil).Info("contact created")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "user_id=u1")
	assert.Equal(t, "req-1", RequestIDFrom(c.Request().Context()))
}

func TestCaller_RejectsEmptyUser(t *testing.T) {
	c := newTestContext()
	SetCaller(c, &entity.Identity{})

	_, ok := Caller(c)
	assert.False(t, ok)
}
