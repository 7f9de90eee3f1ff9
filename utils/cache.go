// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jawwad-masteee/handlix/config"
)

// CacheClient is the response cache client. It stays nil when caching is
// disabled.
var CacheClient *redis.Client

// InitCache connects the response cache client using AppConfig.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("connect to redis (cache) at %s: %w", config.AppConfig.RedisAddr, err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the response cache client, or nil when it was never
// initialised.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// CloseCache releases the cache connection pool.
func CloseCache() {
	if CacheClient != nil {
		CacheClient.Close()
		CacheClient = nil
	}
}
