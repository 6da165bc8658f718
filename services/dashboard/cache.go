package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eazywed/models"
	"eazywed/utils"

	"github.com/go-redis/redis/v8"
)

// StatsCache stores computed dashboard stats per user.
type StatsCache interface {
	// Get returns nil without error on a miss.
	Get(ctx context.Context, userID string) (*models.DashboardStats, error)
	Set(ctx context.Context, userID string, stats *models.DashboardStats) error
	Invalidate(ctx context.Context, userID string) error
}

type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func statsKey(userID string) string {
	return utils.StatsCachePrefix + userID
}

func (c *RedisStatsCache) Get(ctx context.Context, userID string) (*models.DashboardStats, error) {
	val, err := c.client.Get(ctx, statsKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}
	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached stats: %w", err)
	}
	return &stats, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, userID string, stats *models.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
