// Package cache provides a Redis-backed read-through cache for the
// dashboard metrics aggregate. Metrics queries fan out over several tables,
// so hot dashboard reloads are served from a short-TTL cache instead.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// ErrCacheMiss is returned by Get when no value is stored for the key.
var ErrCacheMiss = errors.New("cache miss")

// MetricsCache stores computed gym metrics keyed by gym and range. A nil
// *MetricsCache is a valid disabled cache: Get always misses and Set is a
// no-op, so callers never branch on whether caching is configured.
type MetricsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewMetricsCache connects to Redis and returns the cache. When cfg.Addr is
// empty, caching is disabled and a nil cache is returned without error.
func NewMetricsCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*MetricsCache, error) {
	if cfg.Addr == "" {
		log.Debug().Msg("metrics cache disabled: no redis address configured")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("addr", cfg.Addr).Msg("connected to redis successfully")

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 60 * time.Second
	}

	return &MetricsCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}, nil
}

// Get loads the cached metrics for the gym and range. Returns ErrCacheMiss
// when the key is absent or the cache is disabled.
func (c *MetricsCache) Get(ctx context.Context, gymID string, rng models.MetricsRange) (models.GymMetrics, error) {
	if c == nil {
		return models.GymMetrics{}, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, metricsKey(gymID, rng)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.GymMetrics{}, ErrCacheMiss
	}
	if err != nil {
		return models.GymMetrics{}, fmt.Errorf("error reading metrics from cache: %w", err)
	}

	var metrics models.GymMetrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return models.GymMetrics{}, fmt.Errorf("error decoding cached metrics: %w", err)
	}

	return metrics, nil
}

// Set stores the metrics under the gym-and-range key with the configured
// TTL. No-op on a disabled cache; storage failures are logged, not returned,
// because a cache write must never fail the read path.
func (c *MetricsCache) Set(ctx context.Context, gymID string, rng models.MetricsRange, metrics models.GymMetrics) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(metrics)
	if err != nil {
		c.logger.Err(err).Msg("error encoding metrics for cache")
		return
	}

	if err := c.client.Set(ctx, metricsKey(gymID, rng), raw, c.ttl).Err(); err != nil {
		c.logger.Err(err).Msg("error writing metrics to cache")
	}
}

// Invalidate drops every cached range for the gym. Called after writes that
// change the aggregates (check-ins, payments, member changes).
func (c *MetricsCache) Invalidate(ctx context.Context, gymID string) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "metrics:"+gymID+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Err(err).Str("key", iter.Val()).Msg("error invalidating cached metrics")
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Err(err).Msg("error scanning cached metrics keys")
	}
}

// Close releases the Redis connection.
func (c *MetricsCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func metricsKey(gymID string, rng models.MetricsRange) string {
	return fmt.Sprintf("metrics:%s:%d:%d", gymID, rng.Start.Unix(), rng.End.Unix())
}
