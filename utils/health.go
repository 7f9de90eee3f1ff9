package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	CacheEnabled bool      `json:"cacheEnabled"`
	Redis        bool      `json:"redis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// CheckHealth pings client once and stores the result. A nil client records
// the cache as disabled.
func CheckHealth(ctx context.Context, client *redis.Client) HealthStatus {
	h := HealthStatus{CheckedAt: time.Now()}
	if client != nil {
		h.CacheEnabled = true
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		h.Redis = client.Ping(pingCtx).Err() == nil
		cancel()
	}
	setHealthStatus(h)
	return h
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	CheckHealth(ctx, client)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, client)
			}
		}
	}()
}
