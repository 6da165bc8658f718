package utils

import (
	"context"
	"sync"
	"time"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	Healthy   bool            `json:"healthy"`
	CheckedAt time.Time       `json:"checkedAt"`
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

// CheckHealth runs every check once and stores the result.
func CheckHealth(ctx context.Context, checks map[string]HealthCheck) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(checks)), Healthy: true}
	for name, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := check(checkCtx) == nil
		cancel()
		status.Services[name] = ok
		status.Healthy = status.Healthy && ok
	}
	status.CheckedAt = time.Now()

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state until ctx ends.
func StartHealthMonitor(ctx context.Context, interval time.Duration, checks map[string]HealthCheck) {
	CheckHealth(ctx, checks)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, checks)
			}
		}
	}()
}
