package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/estagiotrack/estagio_backend/config"
)

// NewClient connects to MongoDB from central config and verifies the
// connection with a ping. Callers own the client lifecycle and must
// Disconnect when done.
func NewClient(cfg config.MongoConfig) (*mongo.Client, error) {
	timeout := connectTimeout(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), timeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

func connectTimeout(cfg config.MongoConfig) time.Duration {
	if cfg.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
