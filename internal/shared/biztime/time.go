// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calculating date boundaries (start of day, day buckets, weekday/hour
// buckets for the activity heatmap).
//
// Design principles:
//   - All time storage is in UTC
//   - Day/window statistics calculate business timezone boundaries first,
//     then convert to UTC for queries
//   - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Tashkent"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Tashkent.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone,
// converted to UTC. Used for "today" boundaries in visitor queries.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// DayKey returns the business-timezone calendar date of t formatted as
// YYYY-MM-DD. Used as the bucket key for per-day series.
func DayKey(t time.Time) string {
	return t.In(Location()).Format(time.DateOnly)
}

// DaysAgoUTC returns the UTC instant that is days*24h before t.
// Stats windows are rolling windows, not calendar-aligned.
func DaysAgoUTC(t time.Time, days int) time.Time {
	return t.UTC().Add(-time.Duration(days) * 24 * time.Hour)
}

// HourAndWeekday returns the hour of day (0-23) and day of week (0-6,
// Sunday=0) of t in the business timezone. Heatmap bucket coordinates.
func HourAndWeekday(t time.Time) (hour, weekday int) {
	bizTime := t.In(Location())
	return bizTime.Hour(), int(bizTime.Weekday())
}
