package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/estagiotrack/estagio_backend/config"
	"github.com/estagiotrack/estagio_backend/internal/repo"
	"github.com/estagiotrack/estagio_backend/pkg/mongodb"
	"github.com/estagiotrack/estagio_backend/pkg/observability"
	redispkg "github.com/estagiotrack/estagio_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideMongoClient),
	fx.Provide(ProvideDatabase),
	fx.Provide(ProvideRepository),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideOTel),
)

func ProvideMongoClient(lc fx.Lifecycle, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongodb.NewClient(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})
	return client, nil
}

func ProvideDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

func ProvideRepository(lc fx.Lifecycle, db *mongo.Database) repo.Repository {
	m := repo.NewMongo(db)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return m.EnsureIndexes(ctx)
		},
	})
	return m
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.New(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
