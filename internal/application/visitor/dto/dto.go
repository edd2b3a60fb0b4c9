// Package dto defines the transport-facing shapes of the analytics results.
package dto

import "github.com/ilmpay/ilmpay/internal/domain/visitor"

// BasicMetrics is the dashboard's headline counter block.
type BasicMetrics struct {
	TotalVisitors int64 `json:"totalVisitors"`
	TodayVisitors int64 `json:"todayVisitors"`
	ActiveUsers   int64 `json:"activeUsers"`
	AppDownloads  int64 `json:"appDownloads"`
}

// ComparisonBlock compares each dashboard metric over the current window
// against the immediately preceding window of equal length.
type ComparisonBlock struct {
	TotalVisitors      visitor.MetricComparison `json:"totalVisitors"`
	ActiveUsers        visitor.MetricComparison `json:"activeUsers"`
	AvgSessionDuration visitor.MetricComparison `json:"avgSessionDuration"`
	BounceRate         visitor.MetricComparison `json:"bounceRate"`
}

// VisitorStats is the dashboard stats payload: a per-day series plus the
// window-over-window comparison block.
type VisitorStats struct {
	WindowDays int                `json:"windowDays"`
	Daily      []visitor.DayCount `json:"daily"`
	Comparison ComparisonBlock    `json:"comparison"`
}

// ActivityHeatmap lists the non-empty (hour, weekday) activity buckets.
type ActivityHeatmap struct {
	WindowDays int                     `json:"windowDays"`
	Buckets    []visitor.HeatmapBucket `json:"buckets"`
}
