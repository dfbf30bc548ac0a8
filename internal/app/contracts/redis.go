package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// Increment adds one to a counter key and returns the new value. The
	// expiry is applied only when the increment creates the key, so the
	// window is fixed from the first hit rather than sliding.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
