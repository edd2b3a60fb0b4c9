package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
	"github.com/ilmpay/ilmpay/internal/shared/db"
)

// Aggregations that need business-timezone day or hour buckets select the
// windowed rows and bucket in Go via biztime. SQL date functions differ
// between MySQL and SQLite and neither applies the business timezone, so
// bucketing in Go keeps one code path for both dialects.

// CountDistinctSessions returns the all-time number of distinct session
// identifiers.
func (r *VisitorSessionRepository) CountDistinctSessions(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.VisitorSessionModel{}).
		Distinct("session_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct sessions: %w", err)
	}
	return count, nil
}

// CountDistinctSessionsSince returns the number of distinct session
// identifiers first seen at or after the given instant.
func (r *VisitorSessionRepository) CountDistinctSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.VisitorSessionModel{}).
		Where("first_visit_time >= ?", since).
		Distinct("session_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions since %s: %w", since, err)
	}
	return count, nil
}

// CountActiveSince returns the number of distinct sessions that are open and
// were active at or after the given instant.
func (r *VisitorSessionRepository) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.VisitorSessionModel{}).
		Where("active = ? AND last_active_time >= ?", true, since).
		Distinct("session_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}

// CountDownloads returns the number of distinct sessions that reported an
// app download.
func (r *VisitorSessionRepository) CountDownloads(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.VisitorSessionModel{}).
		Where("downloaded = ?", true).
		Distinct("session_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count downloads: %w", err)
	}
	return count, nil
}

// SummarizeWindow aggregates the sessions that started within [start, end):
// distinct visitors, still-open rows, average session duration, and bounce
// rate. An empty window summarizes to all zeros.
func (r *VisitorSessionRepository) SummarizeWindow(ctx context.Context, start, end time.Time) (visitor.WindowSummary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.VisitorSessionModel
	err := tx.
		Select("session_id", "active", "bounced", "session_duration").
		Where("first_visit_time >= ? AND first_visit_time < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return visitor.WindowSummary{}, fmt.Errorf("failed to load window rows: %w", err)
	}

	if len(rows) == 0 {
		return visitor.WindowSummary{}, nil
	}

	sessions := make(map[string]struct{}, len(rows))
	var active, bounced, durationSum int64
	for _, row := range rows {
		sessions[row.SessionID] = struct{}{}
		if row.Active {
			active++
		}
		if row.Bounced {
			bounced++
		}
		durationSum += row.SessionDuration
	}

	return visitor.WindowSummary{
		TotalVisitors:      int64(len(sessions)),
		ActiveSessions:     active,
		AvgSessionDuration: float64(durationSum) / float64(len(rows)),
		BounceRate:         visitor.BounceRatePercent(bounced, int64(len(rows))),
	}, nil
}

// DailySessionCounts buckets the distinct sessions that started within
// [start, end) by business-timezone calendar day, sorted by date. Days
// without traffic are absent; the use case zero-fills.
func (r *VisitorSessionRepository) DailySessionCounts(ctx context.Context, start, end time.Time) ([]visitor.DayCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.VisitorSessionModel
	err := tx.
		Select("session_id", "first_visit_time").
		Where("first_visit_time >= ? AND first_visit_time < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load daily rows: %w", err)
	}

	type daySession struct {
		day       string
		sessionID string
	}
	seen := make(map[daySession]struct{}, len(rows))
	counts := make(map[string]int64)
	for _, row := range rows {
		key := daySession{day: biztime.DayKey(row.FirstVisitTime), sessionID: row.SessionID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		counts[key.day]++
	}

	result := make([]visitor.DayCount, 0, len(counts))
	for day, count := range counts {
		result = append(result, visitor.DayCount{Date: day, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// HeatmapCounts buckets visit activity within [start, end) by business-
// timezone (hour of day, day of week). Each row contributes its page visit
// count, bucketed at its last activity instant. Empty buckets are absent.
func (r *VisitorSessionRepository) HeatmapCounts(ctx context.Context, start, end time.Time) ([]visitor.HeatmapBucket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.VisitorSessionModel
	err := tx.
		Select("last_active_time", "page_visit_count").
		Where("last_active_time >= ? AND last_active_time < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load heatmap rows: %w", err)
	}

	type bucket struct {
		hour    int
		weekday int
	}
	counts := make(map[bucket]int64)
	for _, row := range rows {
		hour, weekday := biztime.HourAndWeekday(row.LastActiveTime)
		counts[bucket{hour: hour, weekday: weekday}] += int64(row.PageVisitCount)
	}

	result := make([]visitor.HeatmapBucket, 0, len(counts))
	for b, count := range counts {
		result = append(result, visitor.HeatmapBucket{Hour: b.hour, DayOfWeek: b.weekday, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].Hour < result[j].Hour
	})
	return result, nil
}
