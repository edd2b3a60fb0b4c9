// Package cache provides Redis-backed caches for hot read paths.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ilmpay/ilmpay/internal/application/visitor/dto"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

const (
	basicMetricsKey = "analytics:basic_metrics"
	basicMetricsTTL = 60 * time.Second
)

// RedisMetricsCache caches the dashboard's headline counter block for a
// short TTL. The dashboard polls these counters, so even one minute of
// caching absorbs almost all of the read load.
type RedisMetricsCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisMetricsCache creates a new RedisMetricsCache.
func NewRedisMetricsCache(client *redis.Client, logger logger.Interface) *RedisMetricsCache {
	return &RedisMetricsCache{
		client: client,
		logger: logger,
	}
}

// GetBasicMetrics returns the cached counter block, or nil on a cache miss.
func (c *RedisMetricsCache) GetBasicMetrics(ctx context.Context) (*dto.BasicMetrics, error) {
	data, err := c.client.Get(ctx, basicMetricsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get basic metrics from cache: %w", err)
	}

	var metrics dto.BasicMetrics
	if err := json.Unmarshal(data, &metrics); err != nil {
		// A corrupt entry is treated as a miss and will be overwritten.
		c.logger.Warnw("corrupt basic metrics cache entry", "error", err)
		return nil, nil
	}

	return &metrics, nil
}

// SetBasicMetrics stores the counter block with the short TTL.
func (c *RedisMetricsCache) SetBasicMetrics(ctx context.Context, metrics *dto.BasicMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal basic metrics: %w", err)
	}

	if err := c.client.Set(ctx, basicMetricsKey, data, basicMetricsTTL).Err(); err != nil {
		return fmt.Errorf("failed to set basic metrics in cache: %w", err)
	}

	return nil
}
