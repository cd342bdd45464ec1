package database

import (
	"context"
	"fmt"
	"time"

	"homevest-listings/pkg/config"
	"homevest-listings/pkg/logger"
	"homevest-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PropertiesCollection = "properties"
	UsersCollection      = "users"
)

// Mongo holds the sandbox's MongoDB connection.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB, pings it and makes sure the sandbox indexes exist.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		_ = client.Disconnect(context.Background())
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	m := &Mongo{Client: client, DB: client.Database(cfg.Database)}
	if err := m.ensureIndexes(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	start := time.Now()
	_, err := m.DB.Collection(PropertiesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", PropertiesCollection).Inc()
		return err
	}

	start = time.Now()
	_, err = m.DB.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", UsersCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", UsersCollection).Inc()
		return err
	}
	return nil
}

// Close disconnects the client. It is safe on a nil receiver.
func (m *Mongo) Close() {
	if m == nil || m.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := m.Client.Disconnect(ctx)
	metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		return
	}
	logger.GlobalLogger.Println("MongoDB connection closed")
}
