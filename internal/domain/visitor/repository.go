package visitor

import (
	"context"
	"time"
)

// Repository is the persistence port for visitor sessions. It exposes the
// point operations the tracker needs plus the aggregate queries behind the
// analytics endpoints. Implementations must key every "unique visitor"
// aggregate by session identifier, never by IP address.
type Repository interface {
	// Create inserts a new session row. Returns a conflict error when an
	// active row for the same session ID already exists.
	Create(ctx context.Context, session *Session) error

	// Update persists a mutated session row.
	Update(ctx context.Context, session *Session) error

	// FindActiveBySessionID returns the most recently active open row for
	// the session ID, or ErrSessionNotFound. The caller decides whether
	// the inactivity gap allows folding in or forces finalization.
	FindActiveBySessionID(ctx context.Context, sessionID string) (*Session, error)

	// FinalizeExpired finalizes every active row whose last activity is
	// older than cutoff, freezing its duration. Returns the number of rows
	// swept. Implementations must use the (active, last_active_time) index
	// rather than scanning the table.
	FinalizeExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// MarkDownloaded flags the most recent row for the session ID as a
	// conversion.
	MarkDownloaded(ctx context.Context, sessionID string) error

	// CountDistinctSessions counts distinct session IDs ever recorded.
	CountDistinctSessions(ctx context.Context) (int64, error)

	// CountDistinctSessionsSince counts distinct session IDs whose first
	// visit is at or after t.
	CountDistinctSessionsSince(ctx context.Context, t time.Time) (int64, error)

	// CountActiveSince counts active rows with lastActiveTime >= t.
	CountActiveSince(ctx context.Context, t time.Time) (int64, error)

	// CountDownloads counts rows flagged as conversions.
	CountDownloads(ctx context.Context) (int64, error)

	// SummarizeWindow computes the aggregate metrics over rows whose first
	// visit falls in [start, end): distinct visitors, sessions with
	// activity in the window, mean duration, and bounce rate. Empty
	// windows yield zeroes, never an error.
	SummarizeWindow(ctx context.Context, start, end time.Time) (WindowSummary, error)

	// DailySessionCounts returns distinct-session counts bucketed by
	// business-timezone calendar day over [start, end).
	DailySessionCounts(ctx context.Context, start, end time.Time) ([]DayCount, error)

	// HeatmapCounts returns page-visit counts bucketed by business-timezone
	// (hour, weekday) over [start, end); only non-empty buckets appear.
	HeatmapCounts(ctx context.Context, start, end time.Time) ([]HeatmapBucket, error)
}
