package ratelimit

import (
	"context"
	"time"
)

// Limit caps requests per key. A zero field disables that window.
type Limit struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
