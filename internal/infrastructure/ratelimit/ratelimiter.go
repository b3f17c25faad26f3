package ratelimit

import "context"

// Config defines request budgets over sliding windows. A zero limit
// disables that window.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}
