// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"sync"
	"time"

	"casabot/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for conversation session context.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for session context storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session context storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// RowCache memoizes a full table read for a fixed TTL. Repositories invalidate
// it after any write to the same backing sheet.
type RowCache[T any] struct {
	mu        sync.Mutex
	data      T
	valid     bool
	fetchedAt time.Time
	ttl       time.Duration
}

// NewRowCache returns a cache that serves values for at most ttl.
func NewRowCache[T any](ttl time.Duration) *RowCache[T] {
	return &RowCache[T]{ttl: ttl}
}

// Get returns the cached value and whether it is still fresh.
func (c *RowCache[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || time.Since(c.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.data, true
}

// Set stores a freshly fetched value.
func (c *RowCache[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = v
	c.valid = true
	c.fetchedAt = time.Now()
}

// Invalidate drops the cached value.
func (c *RowCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.data = zero
	c.valid = false
}
