// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"jobtrack/config"
	"jobtrack/internal/domain/lifecycle"
	"jobtrack/internal/errors"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
// The connection is verified and indexes are ensured when the application starts.
func New(params Params) (*mongo.Database, error) {
	client, err := Connect(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// Connect builds a client from configuration. The driver dials lazily, so no I/O happens here.
func Connect(cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Mongo.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	connectTimeout := cfg.Mongo.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(connectTimeout).
		SetPoolMonitor(newPoolMonitor(logger))
	if cfg.Mongo.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.Mongo.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return client, nil
}

// newPoolMonitor reports pool pressure: failed checkouts are logged as warnings.
func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.GetFailed:
				logger.Warn("MongoDB connection checkout failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
				)
			case event.PoolCleared:
				logger.Warn("MongoDB connection pool cleared", slog.String("address", evt.Address))
			}
		},
	}
}

// Pinger reports whether the database answers. It backs the readiness probe.
type Pinger struct {
	db *mongo.Database
}

// NewPinger is the constructor for Pinger.
func NewPinger(db *mongo.Database) *Pinger {
	return &Pinger{db: db}
}

// Ping sends a ping command to the primary.
func (p *Pinger) Ping(ctx context.Context) error {
	return errors.WithStack(p.db.Client().Ping(ctx, readpref.Primary()))
}
