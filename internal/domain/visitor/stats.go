package visitor

// DayCount is the number of distinct sessions that started on one
// business-timezone calendar day.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD in business timezone
	Count int64  `json:"count"`
}

// HeatmapBucket is an aggregated visit count for one (hour-of-day,
// day-of-week) pair. DayOfWeek follows time.Weekday: Sunday = 0.
type HeatmapBucket struct {
	Hour      int   `json:"hour"`
	DayOfWeek int   `json:"dayOfWeek"`
	Count     int64 `json:"count"`
}

// WindowSummary holds the aggregate metrics over one time window.
type WindowSummary struct {
	TotalVisitors      int64
	ActiveSessions     int64
	AvgSessionDuration float64 // seconds
	BounceRate         float64 // percent
}

// MetricComparison compares a metric over the current window against the
// immediately preceding window of equal length.
type MetricComparison struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percentChange"`
}

// NewMetricComparison builds a comparison with its percent change.
func NewMetricComparison(current, previous float64) MetricComparison {
	return MetricComparison{
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
	}
}

// PercentChange computes the relative change between two window values.
// Division by zero is normalized: a metric that grew from nothing reads
// as 100%, and one that stayed at zero reads as 0%.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// BounceRatePercent computes 100 * bounced / total, or 0 for an empty window.
func BounceRatePercent(bounced, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(bounced) / float64(total) * 100
}
