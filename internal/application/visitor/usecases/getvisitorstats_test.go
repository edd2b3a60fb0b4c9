package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
)

func TestGetVisitorStats_ComparisonMath(t *testing.T) {
	repo := &fakeRepo{
		summarizeWindowFn: func(ctx context.Context, start, end time.Time) (visitor.WindowSummary, error) {
			// The current window ends now; the previous window ends earlier.
			if time.Since(end) < time.Minute {
				return visitor.WindowSummary{
					TotalVisitors:      10,
					ActiveSessions:     4,
					AvgSessionDuration: 120,
					BounceRate:         50,
				}, nil
			}
			return visitor.WindowSummary{
				TotalVisitors:      5,
				ActiveSessions:     0,
				AvgSessionDuration: 240,
				BounceRate:         0,
			}, nil
		},
	}
	uc := NewGetVisitorStatsUseCase(repo, noopLogger{})

	stats, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.WindowDays)
	assert.InDelta(t, 100, stats.Comparison.TotalVisitors.PercentChange, 0.001)
	// Previous zero with non-zero current reports +100.
	assert.InDelta(t, 100, stats.Comparison.ActiveUsers.PercentChange, 0.001)
	assert.InDelta(t, -50, stats.Comparison.AvgSessionDuration.PercentChange, 0.001)
	assert.InDelta(t, 100, stats.Comparison.BounceRate.PercentChange, 0.001)
}

func TestGetVisitorStats_BothWindowsEmpty(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewGetVisitorStatsUseCase(repo, noopLogger{})

	stats, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	// Empty-over-empty is "no change", not NaN.
	assert.Zero(t, stats.Comparison.TotalVisitors.PercentChange)
	assert.Zero(t, stats.Comparison.BounceRate.PercentChange)
}

func TestGetVisitorStats_DailySeriesIsZeroFilled(t *testing.T) {
	now := biztime.NowUTC()
	busyDay := biztime.DayKey(now)

	repo := &fakeRepo{
		dailySessionCountsFn: func(ctx context.Context, start, end time.Time) ([]visitor.DayCount, error) {
			return []visitor.DayCount{{Date: busyDay, Count: 12}}, nil
		},
	}
	uc := NewGetVisitorStatsUseCase(repo, noopLogger{})

	stats, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	// A 7-day rolling window touches 7 or 8 business-tz calendar days.
	require.GreaterOrEqual(t, len(stats.Daily), 7)
	require.LessOrEqual(t, len(stats.Daily), 8)

	total := int64(0)
	busy := 0
	for _, d := range stats.Daily {
		total += d.Count
		if d.Date == busyDay {
			busy++
		}
	}
	assert.Equal(t, int64(12), total)
	assert.Equal(t, 1, busy, "each day appears exactly once")
}
