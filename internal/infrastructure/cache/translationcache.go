package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

const (
	translationKeyPrefix = "i18n:bundle:"
	translationTTL       = 10 * time.Minute
)

// RedisTranslationCache caches whole per-language translation bundles.
// Bundles change only on admin edits, which evict the affected language.
type RedisTranslationCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisTranslationCache creates a new RedisTranslationCache.
func NewRedisTranslationCache(client *redis.Client, logger logger.Interface) *RedisTranslationCache {
	return &RedisTranslationCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisTranslationCache) key(languageCode string) string {
	return translationKeyPrefix + languageCode
}

// GetBundle returns the cached key-to-text bundle for a language, or nil on
// a cache miss.
func (c *RedisTranslationCache) GetBundle(ctx context.Context, languageCode string) (map[string]string, error) {
	data, err := c.client.Get(ctx, c.key(languageCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get translation bundle from cache: %w", err)
	}

	var bundle map[string]string
	if err := json.Unmarshal(data, &bundle); err != nil {
		c.logger.Warnw("corrupt translation bundle cache entry",
			"language", languageCode,
			"error", err,
		)
		return nil, nil
	}

	return bundle, nil
}

// SetBundle stores a language bundle.
func (c *RedisTranslationCache) SetBundle(ctx context.Context, languageCode string, bundle map[string]string) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal translation bundle: %w", err)
	}

	if err := c.client.Set(ctx, c.key(languageCode), data, translationTTL).Err(); err != nil {
		return fmt.Errorf("failed to set translation bundle in cache: %w", err)
	}

	return nil
}

// Evict drops the cached bundle for a language after an admin edit.
func (c *RedisTranslationCache) Evict(ctx context.Context, languageCode string) error {
	if err := c.client.Del(ctx, c.key(languageCode)).Err(); err != nil {
		return fmt.Errorf("failed to evict translation bundle: %w", err)
	}

	c.logger.Debugw("translation bundle evicted", "language", languageCode)
	return nil
}
