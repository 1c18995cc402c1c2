package handler

import (
	"context"

	"jobtrack/internal/delivery/api/response"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live is a simple handler to check if the service is up.
func (h *HealthHandler) Live(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}

// Ready reports 503 while MongoDB cannot be reached.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), lifecycle.ReadinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails("mongo unreachable").Wrap(err)
	}

	return response.OK(c, map[string]string{"status": "ok", "mongo": "ok"}, "Service is ready")
}
