package main

import (
	"context"
	"log/slog"

	"jobtrack/config"
	"jobtrack/internal/domain/lifecycle"
	"jobtrack/internal/errors"
	logs "jobtrack/internal/infra/log"
	"jobtrack/internal/infra/persistence/mongodb"

	"github.com/spf13/cobra"
)

var migrateIndexesCmd = &cobra.Command{
	Use:   "migrate-indexes",
	Short: "Creates the MongoDB indexes and exits",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger, err := logs.New(logs.Params{Config: cfg})
		if err != nil {
			return err
		}

		client, err := mongodb.Connect(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()

		ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := mongodb.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
			return errors.Wrap(err, "ensure indexes")
		}

		logger.Info("MongoDB indexes are in place", slog.String("database", cfg.Mongo.Database))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateIndexesCmd)
}
