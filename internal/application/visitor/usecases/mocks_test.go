package usecases

import (
	"context"
	"time"

	"github.com/ilmpay/ilmpay/internal/application/visitor/dto"
	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// noopLogger satisfies logger.Interface for tests.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// passthroughTx runs the transactional function directly.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo is a function-field fake of visitor.Repository. Unset fields
// return zero values.
type fakeRepo struct {
	createFn             func(ctx context.Context, s *visitor.Session) error
	updateFn             func(ctx context.Context, s *visitor.Session) error
	findActiveFn         func(ctx context.Context, sessionID string) (*visitor.Session, error)
	finalizeExpiredFn    func(ctx context.Context, cutoff time.Time) (int64, error)
	markDownloadedFn     func(ctx context.Context, sessionID string) error
	countDistinctFn      func(ctx context.Context) (int64, error)
	countDistinctSinceFn func(ctx context.Context, t time.Time) (int64, error)
	countActiveSinceFn   func(ctx context.Context, t time.Time) (int64, error)
	countDownloadsFn     func(ctx context.Context) (int64, error)
	summarizeWindowFn    func(ctx context.Context, start, end time.Time) (visitor.WindowSummary, error)
	dailySessionCountsFn func(ctx context.Context, start, end time.Time) ([]visitor.DayCount, error)
	heatmapCountsFn      func(ctx context.Context, start, end time.Time) ([]visitor.HeatmapBucket, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *visitor.Session) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, s *visitor.Session) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeRepo) FindActiveBySessionID(ctx context.Context, sessionID string) (*visitor.Session, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, sessionID)
	}
	return nil, visitor.ErrSessionNotFound
}

func (f *fakeRepo) FinalizeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if f.finalizeExpiredFn != nil {
		return f.finalizeExpiredFn(ctx, cutoff)
	}
	return 0, nil
}

func (f *fakeRepo) MarkDownloaded(ctx context.Context, sessionID string) error {
	if f.markDownloadedFn != nil {
		return f.markDownloadedFn(ctx, sessionID)
	}
	return nil
}

func (f *fakeRepo) CountDistinctSessions(ctx context.Context) (int64, error) {
	if f.countDistinctFn != nil {
		return f.countDistinctFn(ctx)
	}
	return 0, nil
}

func (f *fakeRepo) CountDistinctSessionsSince(ctx context.Context, t time.Time) (int64, error) {
	if f.countDistinctSinceFn != nil {
		return f.countDistinctSinceFn(ctx, t)
	}
	return 0, nil
}

func (f *fakeRepo) CountActiveSince(ctx context.Context, t time.Time) (int64, error) {
	if f.countActiveSinceFn != nil {
		return f.countActiveSinceFn(ctx, t)
	}
	return 0, nil
}

func (f *fakeRepo) CountDownloads(ctx context.Context) (int64, error) {
	if f.countDownloadsFn != nil {
		return f.countDownloadsFn(ctx)
	}
	return 0, nil
}

func (f *fakeRepo) SummarizeWindow(ctx context.Context, start, end time.Time) (visitor.WindowSummary, error) {
	if f.summarizeWindowFn != nil {
		return f.summarizeWindowFn(ctx, start, end)
	}
	return visitor.WindowSummary{}, nil
}

func (f *fakeRepo) DailySessionCounts(ctx context.Context, start, end time.Time) ([]visitor.DayCount, error) {
	if f.dailySessionCountsFn != nil {
		return f.dailySessionCountsFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeRepo) HeatmapCounts(ctx context.Context, start, end time.Time) ([]visitor.HeatmapBucket, error) {
	if f.heatmapCountsFn != nil {
		return f.heatmapCountsFn(ctx, start, end)
	}
	return nil, nil
}

// fakeMetricsCache is an in-memory MetricsCache.
type fakeMetricsCache struct {
	stored *dto.BasicMetrics
	getErr error
	setErr error
	setCnt int
}

func (f *fakeMetricsCache) GetBasicMetrics(ctx context.Context) (*dto.BasicMetrics, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeMetricsCache) SetBasicMetrics(ctx context.Context, metrics *dto.BasicMetrics) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = metrics
	f.setCnt++
	return nil
}
