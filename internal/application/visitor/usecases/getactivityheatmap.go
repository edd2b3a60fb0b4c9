package usecases

import (
	"context"
	"fmt"

	"github.com/ilmpay/ilmpay/internal/application/visitor/dto"
	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// GetActivityHeatmapUseCase buckets session activity by (hour of day,
// day of week) over the requested window.
type GetActivityHeatmapUseCase struct {
	repo   visitor.Repository
	logger logger.Interface
}

// NewGetActivityHeatmapUseCase creates a new GetActivityHeatmapUseCase.
func NewGetActivityHeatmapUseCase(repo visitor.Repository, logger logger.Interface) *GetActivityHeatmapUseCase {
	return &GetActivityHeatmapUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the non-empty heatmap buckets for [now-days, now].
func (uc *GetActivityHeatmapUseCase) Execute(ctx context.Context, days int) (*dto.ActivityHeatmap, error) {
	now := biztime.NowUTC()
	start := biztime.DaysAgoUTC(now, days)

	buckets, err := uc.repo.HeatmapCounts(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load heatmap counts: %w", err)
	}

	if buckets == nil {
		buckets = []visitor.HeatmapBucket{}
	}

	return &dto.ActivityHeatmap{
		WindowDays: days,
		Buckets:    buckets,
	}, nil
}
