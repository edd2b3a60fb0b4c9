package visitor

import "errors"

var (
	// ErrEmptySessionID indicates a tracking call without a session identifier.
	ErrEmptySessionID = errors.New("session ID is required")

	// ErrEmptyPageID indicates a tracking call without a page identifier.
	ErrEmptyPageID = errors.New("page ID is required")

	// ErrSessionFinalized indicates an attempted mutation of an inactive row.
	ErrSessionFinalized = errors.New("session is already finalized")

	// ErrInvalidSessionRow indicates persistence data that cannot form a valid session.
	ErrInvalidSessionRow = errors.New("invalid session row")

	// ErrSessionNotFound indicates no matching session row.
	ErrSessionNotFound = errors.New("session not found")
)
