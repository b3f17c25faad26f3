package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Allow_PerMinute(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	config := Config{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client-a", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be rejected")

	// A different key has its own budget.
	allowed, err = limiter.Allow(ctx, "client-b", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_ZeroLimitsDisabled(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(ctx, "client-a", Config{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	config := Config{RequestsPerMinute: 1}

	allowed, err := limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "client-a"))

	allowed, err = limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{RequestsPerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "client-a", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{RequestsPerMinute: 1}

	allowed, err := limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "client-a"))

	allowed, err = limiter.Allow(ctx, "client-a", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}
