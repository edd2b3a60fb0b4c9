package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/application/visitor/dto"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client, mr
}

func TestRedisMetricsCache_RoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisMetricsCache(client, newNopLogger())
	ctx := context.Background()

	// Empty cache is a miss, not an error.
	got, err := c.GetBasicMetrics(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	metrics := &dto.BasicMetrics{
		TotalVisitors: 120,
		TodayVisitors: 14,
		ActiveUsers:   3,
		AppDownloads:  41,
	}
	require.NoError(t, c.SetBasicMetrics(ctx, metrics))

	got, err = c.GetBasicMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, metrics, got)

	// The entry expires after its short TTL.
	mr.FastForward(basicMetricsTTL + 1)
	got, err = c.GetBasicMetrics(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisMetricsCache_CorruptEntryIsAMiss(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedisMetricsCache(client, newNopLogger())

	require.NoError(t, mr.Set(basicMetricsKey, "{not json"))

	got, err := c.GetBasicMetrics(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisTranslationCache_RoundTripAndEvict(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewRedisTranslationCache(client, newNopLogger())
	ctx := context.Background()

	got, err := c.GetBundle(ctx, "en")
	require.NoError(t, err)
	assert.Nil(t, got)

	bundle := map[string]string{
		"hero.title":    "Learn anywhere",
		"hero.subtitle": "Free forever",
	}
	require.NoError(t, c.SetBundle(ctx, "en", bundle))

	got, err = c.GetBundle(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, bundle, got)

	// Eviction only touches the edited language.
	require.NoError(t, c.SetBundle(ctx, "uz", map[string]string{"hero.title": "Istalgan joyda"}))
	require.NoError(t, c.Evict(ctx, "en"))

	got, err = c.GetBundle(ctx, "en")
	require.NoError(t, err)
	assert.Nil(t, got)

	uz, err := c.GetBundle(ctx, "uz")
	require.NoError(t, err)
	assert.NotNil(t, uz)
}
