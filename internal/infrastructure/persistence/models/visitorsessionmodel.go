package models

import "time"

// VisitorSessionModel represents the database persistence model for visitor
// session rows.
//
// ActiveKey mirrors SessionID while the row is active and is NULL once the
// row is finalized. The unique index on it enforces at most one active row
// per session identifier without a partial index, which MySQL lacks; a
// concurrent duplicate insert surfaces as a key conflict the use case
// resolves by folding into the winner row.
type VisitorSessionModel struct {
	ID              uint      `gorm:"primarykey"`
	SessionID       string    `gorm:"size:64;not null;index"`
	ActiveKey       *string   `gorm:"size:64;uniqueIndex"`
	IPAddress       string    `gorm:"size:45"`
	UserAgent       string    `gorm:"size:512"`
	FirstVisitTime  time.Time `gorm:"not null;index"`
	LastActiveTime  time.Time `gorm:"not null;index:idx_visitor_sessions_active_last,priority:2"`
	LastPageVisited string    `gorm:"size:255"`
	PageVisitCount  int       `gorm:"not null;default:1"`
	Active          bool      `gorm:"not null;index:idx_visitor_sessions_active_last,priority:1"`
	Bounced         bool      `gorm:"not null"`
	SessionDuration int64     `gorm:"not null;default:0"`
	Downloaded      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (VisitorSessionModel) TableName() string {
	return "visitor_sessions"
}
