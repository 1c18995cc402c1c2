// Package worker receives domain events pushed by Pub/Sub or by the local publisher.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"jobtrack/config"
	"jobtrack/internal/delivery"
	apimiddleware "jobtrack/internal/delivery/api/middleware"
	"jobtrack/internal/delivery/api/response"
	"jobtrack/internal/delivery/middleware"
	"jobtrack/internal/delivery/worker/handler"
	"jobtrack/internal/domain/lifecycle"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// EventsPath is the push target configured as pubsub.localEndpoint or as the push subscription URL.
	EventsPath = "/events"

	// eventBodyLimit bounds one push envelope. Events carry ids and a few attributes.
	eventBodyLimit = "64KB"
)

type eventServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the event server.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &eventServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		echo:   newEventEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEventEcho shares the API server's request id, logging and error envelope,
// but exposes only liveness and the push endpoint.
func newEventEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger, cfg).HandleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return response.OK(c, map[string]string{"status": "ok"}, "Event worker is alive")
	})
	e.POST(EventsPath, push.HandlePush, echomiddleware.BodyLimit(eventBodyLimit))

	return e
}

func (s *eventServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting event worker", slog.String("host_port", hostPort), slog.String("path", EventsPath))

	err := s.echo.Start(hostPort)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *eventServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down event worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
