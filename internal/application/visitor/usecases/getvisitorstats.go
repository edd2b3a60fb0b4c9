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

// GetVisitorStatsUseCase computes the dashboard stats block: a per-day
// distinct-session series over the requested window plus a comparison of
// each metric against the immediately preceding window of equal length.
type GetVisitorStatsUseCase struct {
	repo   visitor.Repository
	logger logger.Interface
}

// NewGetVisitorStatsUseCase creates a new GetVisitorStatsUseCase.
func NewGetVisitorStatsUseCase(repo visitor.Repository, logger logger.Interface) *GetVisitorStatsUseCase {
	return &GetVisitorStatsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute computes stats for the window [now-days, now]. days must already
// be validated/clamped by the caller.
func (uc *GetVisitorStatsUseCase) Execute(ctx context.Context, days int) (*dto.VisitorStats, error) {
	now := biztime.NowUTC()
	start := biztime.DaysAgoUTC(now, days)
	prevStart := biztime.DaysAgoUTC(start, days)

	daily, err := uc.repo.DailySessionCounts(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily session counts: %w", err)
	}

	current, err := uc.repo.SummarizeWindow(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize current window: %w", err)
	}

	previous, err := uc.repo.SummarizeWindow(ctx, prevStart, start)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize previous window: %w", err)
	}

	return &dto.VisitorStats{
		WindowDays: days,
		Daily:      zeroFillDaily(daily, start, now),
		Comparison: dto.ComparisonBlock{
			TotalVisitors:      visitor.NewMetricComparison(float64(current.TotalVisitors), float64(previous.TotalVisitors)),
			ActiveUsers:        visitor.NewMetricComparison(float64(current.ActiveSessions), float64(previous.ActiveSessions)),
			AvgSessionDuration: visitor.NewMetricComparison(current.AvgSessionDuration, previous.AvgSessionDuration),
			BounceRate:         visitor.NewMetricComparison(current.BounceRate, previous.BounceRate),
		},
	}, nil
}

// zeroFillDaily expands the sparse per-day counts into a dense series, one
// entry per business-timezone calendar day touched by the window.
func zeroFillDaily(counts []visitor.DayCount, start, end time.Time) []visitor.DayCount {
	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Date] = c.Count
	}

	var series []visitor.DayCount
	seen := make(map[string]bool)
	for t := start; !t.After(end); t = t.Add(24 * time.Hour) {
		key := biztime.DayKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		series = append(series, visitor.DayCount{Date: key, Count: byDay[key]})
	}
	// A rolling window may touch one more calendar day than its length.
	if key := biztime.DayKey(end); !seen[key] {
		series = append(series, visitor.DayCount{Date: key, Count: byDay[key]})
	}
	return series
}
