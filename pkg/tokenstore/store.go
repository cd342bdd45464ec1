// Package tokenstore keeps the bearer token the CLI hands to the property client.
package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"homevest-listings/pkg/config"
)

var ErrNotFound = errors.New("token not found")

// Store is an async-friendly key-value store for credentials
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New opens the store selected by cfg.Driver
func New(ctx context.Context, cfg config.TokenStoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFileStore(cfg.Path), nil
	case "redis":
		return NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown token store driver %q", cfg.Driver)
	}
}
