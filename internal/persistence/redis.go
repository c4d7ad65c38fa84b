package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fieldops/crew-scheduler/internal/config"
)

// Cache keys for the read-only query layer.
const (
	CacheKeySchedule      = "schedule:enriched"
	CacheKeyJobStatistics = "jobs:statistics"
)

// Cache is an optional Redis-backed read-through cache. A nil *Cache is valid
// and disables caching; an unreachable Redis degrades to pass-through.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache connects to Redis using the provided configuration. Returns nil
// when no address is configured.
func NewCache(cfg config.RedisConfig, logger *zap.Logger) *Cache {
	if !cfg.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis, cache will degrade to pass-through", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Cache{client: client, ttl: cfg.TTL(), logger: logger}
}

// GetJSON loads a cached value into v. Returns false on miss or any cache
// failure; cache failures are never surfaced to callers.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warn("cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return false
	}
	return true
}

// SetJSON stores v under key with the configured TTL, best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes keys, best effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// Ping verifies Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("cache not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the client.
func (c *Cache) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}
