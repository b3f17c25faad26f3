package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
)

const (
	// statisticsKey is the Redis key holding the cached statistics snapshot.
	statisticsKey = "statistics:tickets"

	// statisticsTTL bounds staleness if an invalidation is ever missed.
	statisticsTTL = 5 * time.Minute
)

// RedisStatisticsCache stores the computed ticket statistics snapshot in Redis.
// Writers invalidate it, so readers normally see fresh data well before the TTL.
type RedisStatisticsCache struct {
	client *redis.Client
}

func NewRedisStatisticsCache(client *redis.Client) *RedisStatisticsCache {
	return &RedisStatisticsCache{client: client}
}

// Get returns the cached snapshot, or nil when no snapshot is present.
func (c *RedisStatisticsCache) Get(ctx context.Context) (*dto.StatisticsDTO, error) {
	data, err := c.client.Get(ctx, statisticsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics from cache: %w", err)
	}

	var stats dto.StatisticsDTO
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached statistics: %w", err)
	}

	return &stats, nil
}

func (c *RedisStatisticsCache) Set(ctx context.Context, stats *dto.StatisticsDTO) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal statistics: %w", err)
	}

	if err := c.client.Set(ctx, statisticsKey, data, statisticsTTL).Err(); err != nil {
		return fmt.Errorf("failed to set statistics in cache: %w", err)
	}

	return nil
}

func (c *RedisStatisticsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statisticsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate statistics cache: %w", err)
	}
	return nil
}

// NoopStatisticsCache is used when Redis is disabled. Every read misses,
// so statistics are always computed from the store.
type NoopStatisticsCache struct{}

func NewNoopStatisticsCache() *NoopStatisticsCache {
	return &NoopStatisticsCache{}
}

func (c *NoopStatisticsCache) Get(ctx context.Context) (*dto.StatisticsDTO, error) {
	return nil, nil
}

func (c *NoopStatisticsCache) Set(ctx context.Context, stats *dto.StatisticsDTO) error {
	return nil
}

func (c *NoopStatisticsCache) Invalidate(ctx context.Context) error {
	return nil
}
