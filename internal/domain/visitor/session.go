// Package visitor provides the domain model for visitor session tracking.
// A Session is one bounded sequence of page views from a single client:
// it starts on the first tracked view, folds subsequent views in while the
// inactivity gap stays under the session timeout, and is finalized either
// by the expiry sweeper or when a new view arrives after a timeout gap.
package visitor

import (
	"strings"
	"time"
)

// Session is the visitor session aggregate. One external session identifier
// may be represented by several Session rows over time; at most one of them
// is active at a given instant.
type Session struct {
	id              uint
	sessionID       string
	ipAddress       string
	userAgent       string
	firstVisitTime  time.Time
	lastActiveTime  time.Time
	lastPageVisited string
	pageVisitCount  int
	active          bool
	bounced         bool
	durationSeconds int64
	downloaded      bool
}

// StartSession creates a new active session row for the first tracked view.
func StartSession(sessionID, ipAddress, userAgent, pageID string, now time.Time) (*Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrEmptySessionID
	}
	if strings.TrimSpace(pageID) == "" {
		return nil, ErrEmptyPageID
	}

	now = now.UTC()
	return &Session{
		sessionID:       sessionID,
		ipAddress:       ipAddress,
		userAgent:       userAgent,
		firstVisitTime:  now,
		lastActiveTime:  now,
		lastPageVisited: pageID,
		pageVisitCount:  1,
		active:          true,
		bounced:         true,
		durationSeconds: 0,
	}, nil
}

// ReconstructSession rebuilds a session from persistence.
func ReconstructSession(
	id uint,
	sessionID string,
	ipAddress string,
	userAgent string,
	firstVisitTime time.Time,
	lastActiveTime time.Time,
	lastPageVisited string,
	pageVisitCount int,
	active bool,
	bounced bool,
	durationSeconds int64,
	downloaded bool,
) (*Session, error) {
	if id == 0 {
		return nil, ErrInvalidSessionRow
	}
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if pageVisitCount < 1 {
		return nil, ErrInvalidSessionRow
	}

	return &Session{
		id:              id,
		sessionID:       sessionID,
		ipAddress:       ipAddress,
		userAgent:       userAgent,
		firstVisitTime:  firstVisitTime.UTC(),
		lastActiveTime:  lastActiveTime.UTC(),
		lastPageVisited: lastPageVisited,
		pageVisitCount:  pageVisitCount,
		active:          active,
		bounced:         bounced,
		durationSeconds: durationSeconds,
		downloaded:      downloaded,
	}, nil
}

// RecordPageView folds another page view into the active session: bumps the
// visit counter, moves the activity timestamp, recomputes the running
// duration, and clears the bounce flag once more than one page was viewed.
func (s *Session) RecordPageView(pageID string, now time.Time) error {
	if !s.active {
		return ErrSessionFinalized
	}
	if strings.TrimSpace(pageID) == "" {
		return ErrEmptyPageID
	}

	now = now.UTC()
	s.lastActiveTime = now
	s.lastPageVisited = pageID
	s.pageVisitCount++
	s.durationSeconds = durationBetween(s.firstVisitTime, now)
	if s.pageVisitCount > 1 {
		s.bounced = false
	}
	return nil
}

// GapExceeds reports whether the inactivity gap at `now` exceeds the timeout.
func (s *Session) GapExceeds(now time.Time, timeout time.Duration) bool {
	return now.UTC().Sub(s.lastActiveTime) > timeout
}

// Finalize ends the session: the row becomes inactive and its duration is
// frozen at the elapsed time between first visit and last activity.
// Finalize is idempotent; a finalized session never mutates again.
func (s *Session) Finalize() {
	if !s.active {
		return
	}
	s.active = false
	s.durationSeconds = durationBetween(s.firstVisitTime, s.lastActiveTime)
}

// MarkDownloaded records a conversion event for this session.
func (s *Session) MarkDownloaded() {
	s.downloaded = true
}

func durationBetween(first, last time.Time) int64 {
	d := int64(last.Sub(first) / time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// SetID sets the row ID (only for persistence layer use)
func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return ErrInvalidSessionRow
	}
	s.id = id
	return nil
}

func (s *Session) ID() uint                  { return s.id }
func (s *Session) SessionID() string         { return s.sessionID }
func (s *Session) IPAddress() string         { return s.ipAddress }
func (s *Session) UserAgent() string         { return s.userAgent }
func (s *Session) FirstVisitTime() time.Time { return s.firstVisitTime }
func (s *Session) LastActiveTime() time.Time { return s.lastActiveTime }
func (s *Session) LastPageVisited() string   { return s.lastPageVisited }
func (s *Session) PageVisitCount() int       { return s.pageVisitCount }
func (s *Session) IsActive() bool            { return s.active }
func (s *Session) IsBounced() bool           { return s.bounced }
func (s *Session) DurationSeconds() int64    { return s.durationSeconds }
func (s *Session) IsDownloaded() bool        { return s.downloaded }
