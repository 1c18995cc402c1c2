// Package context carries per-request values (request ID, scoped logger and
// the authenticated caller) through echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"jobtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// BindRequest stores the request ID and the request-scoped logger. Handlers
// read them from echo.Context, services from the request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set("request_id", requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	if logger != nil {
		ctx = context.WithValue(ctx, loggerKey, logger)
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID bound to this request, or "" outside the request ID middleware.
func RequestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)

	return id
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// LoggerFrom returns the request-scoped logger, or fallback when none is bound.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

// SetCaller records the authenticated user. Once set, every line written
// through the request logger carries user_id.
func SetCaller(c echo.Context, caller *entity.Identity) {
	c.Set("caller", caller)

	ctx := c.Request().Context()
	if logger := LoggerFrom(ctx, nil); logger != nil && caller != nil {
		ctx = context.WithValue(ctx, loggerKey, logger.With(slog.String("user_id", caller.UserID)))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// Caller returns the user recorded by SetCaller. ok is false for anonymous requests.
func Caller(c echo.Context) (*entity.Identity, bool) {
	caller, ok := c.Get("caller").(*entity.Identity)

	return caller, ok && caller != nil && caller.UserID != ""
}
