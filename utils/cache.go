// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eazywed/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient holds the dashboard stats cache and the trending searches
// sorted set. It lives on REDIS_CACHE_DB; the asynq queue uses REDIS_QUEUE_DB
// through its own connection so a cache flush never drops queued sweeps.
var CacheClient *redis.Client

// InitCache connects CacheClient and exits when Redis is unreachable.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns CacheClient, connecting on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
