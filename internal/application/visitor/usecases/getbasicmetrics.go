package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ilmpay/ilmpay/internal/application/visitor/dto"
	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// MetricsCache caches the headline counter block for a short TTL. A nil
// result with nil error is a cache miss. Cache failures degrade to direct
// store queries.
type MetricsCache interface {
	GetBasicMetrics(ctx context.Context) (*dto.BasicMetrics, error)
	SetBasicMetrics(ctx context.Context, metrics *dto.BasicMetrics) error
}

// sweeper triggers a lazy sweep so "currently active" never counts rows
// that are only active because the scheduler has not run yet.
type sweeper interface {
	Execute(ctx context.Context) (int, error)
}

// GetBasicMetricsUseCase serves the dashboard's headline counters:
// total visitors, today's visitors, currently active users, and downloads.
type GetBasicMetricsUseCase struct {
	repo         visitor.Repository
	sweep        sweeper
	cache        MetricsCache
	activeWindow time.Duration
	logger       logger.Interface
}

// NewGetBasicMetricsUseCase creates a new GetBasicMetricsUseCase.
// cache may be nil when redis is disabled. activeWindow is the freshness
// window for "currently active" counts, independent of the session timeout.
func NewGetBasicMetricsUseCase(
	repo visitor.Repository,
	sweep sweeper,
	cache MetricsCache,
	activeWindow time.Duration,
	logger logger.Interface,
) *GetBasicMetricsUseCase {
	return &GetBasicMetricsUseCase{
		repo:         repo,
		sweep:        sweep,
		cache:        cache,
		activeWindow: activeWindow,
		logger:       logger,
	}
}

// Execute returns the counter block, preferring the short-TTL cache.
func (uc *GetBasicMetricsUseCase) Execute(ctx context.Context) (*dto.BasicMetrics, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetBasicMetrics(ctx)
		if err != nil {
			uc.logger.Warnw("metrics cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	if _, err := uc.sweep.Execute(ctx); err != nil {
		// A failed sweep only means slightly stale active counts.
		uc.logger.Warnw("lazy sweep before metrics failed", "error", err)
	}

	now := biztime.NowUTC()

	total, err := uc.repo.CountDistinctSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count total visitors: %w", err)
	}

	today, err := uc.repo.CountDistinctSessionsSince(ctx, biztime.StartOfDayUTC(now))
	if err != nil {
		return nil, fmt.Errorf("failed to count today's visitors: %w", err)
	}

	active, err := uc.repo.CountActiveSince(ctx, now.Add(-uc.activeWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	downloads, err := uc.repo.CountDownloads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count downloads: %w", err)
	}

	metrics := &dto.BasicMetrics{
		TotalVisitors: total,
		TodayVisitors: today,
		ActiveUsers:   active,
		AppDownloads:  downloads,
	}

	if uc.cache != nil {
		if err := uc.cache.SetBasicMetrics(ctx, metrics); err != nil {
			uc.logger.Warnw("metrics cache write failed", "error", err)
		}
	}

	return metrics, nil
}
