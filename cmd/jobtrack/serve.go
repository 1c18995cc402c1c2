package main

import (
	"context"
	"log/slog"
	"os"

	"jobtrack/config"
	"jobtrack/internal/delivery"
	"jobtrack/internal/delivery/api"
	"jobtrack/internal/delivery/api/cookies"
	"jobtrack/internal/delivery/api/middleware"
	"jobtrack/internal/delivery/api/router/handler"
	"jobtrack/internal/infra/auth"
	logs "jobtrack/internal/infra/log"
	"jobtrack/internal/infra/persistence/mongodb"
	"jobtrack/internal/infra/pubsub"
	"jobtrack/internal/infra/storage"
	"jobtrack/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API server",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(
			injectInfra(),
			injectRepo(),
			injectService(),
			injectUsecase(),
			injectDelivery(),
			injectMiddleware(),
			injectHandler(),
			fx.Invoke(
				startServer,
			),
		).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongodb.New,
			fx.Annotate(
				mongodb.NewPinger,
				fx.As(new(handler.Pinger)),
			),
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewApplicationRepository,
			mongodb.NewContactRepository,
			mongodb.NewInterviewRepository,
			mongodb.NewResumeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewApplicationService,
			impl.NewContactService,
			impl.NewInterviewService,
			impl.NewResumeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			cookies.NewWriter,
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewResumeHandler,
			handler.NewContactHandler,
			handler.NewApplicationHandler,
			handler.NewInterviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
