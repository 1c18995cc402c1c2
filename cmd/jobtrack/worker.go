package main

import (
	"context"

	"jobtrack/config"
	"jobtrack/internal/delivery/worker"
	"jobtrack/internal/delivery/worker/handler"
	logs "jobtrack/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Starts the worker that receives pushed domain events",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(
			fx.Provide(
				config.New,
				logs.New,
				context.Background,
				handler.NewPushHandler,
				fx.Annotate(
					worker.NewServer,
					fx.ResultTags(`group:"deliveries"`),
				),
			),
			fx.Invoke(
				startServer,
			),
		).Run()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
