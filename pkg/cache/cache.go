package cache

import (
	"context"
	"errors"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Reader defines the read-only cache operations.
type Reader interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Ping(ctx context.Context) error
	Close() error
}
