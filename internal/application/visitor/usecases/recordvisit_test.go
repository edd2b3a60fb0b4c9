package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
)

const testTimeout = 30 * time.Minute

func TestRecordVisit_FirstVisitCreatesSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	var created *visitor.Session
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *visitor.Session) error {
			created = s
			return nil
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	uc.Execute(context.Background(), RecordVisitCommand{
		SessionID: "sess-1",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
		PageID:    "home",
		Now:       now,
	})

	require.NotNil(t, created)
	assert.Equal(t, "sess-1", created.SessionID())
	assert.Equal(t, 1, created.PageVisitCount())
	assert.True(t, created.IsActive())
	assert.True(t, created.IsBounced())
	assert.Equal(t, int64(0), created.DurationSeconds())
	assert.Equal(t, now, created.FirstVisitTime())
}

func TestRecordVisit_SecondVisitFoldsIntoSession(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	existing, err := visitor.StartSession("sess-1", "203.0.113.7", "ua", "home", start)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(1))

	var updated *visitor.Session
	repo := &fakeRepo{
		findActiveFn: func(ctx context.Context, sessionID string) (*visitor.Session, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, s *visitor.Session) error {
			updated = s
			return nil
		},
		createFn: func(ctx context.Context, s *visitor.Session) error {
			t.Fatal("no new row should be created")
			return nil
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	uc.Execute(context.Background(), RecordVisitCommand{
		SessionID: "sess-1",
		PageID:    "pricing",
		Now:       start.Add(5 * time.Minute),
	})

	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.PageVisitCount())
	assert.False(t, updated.IsBounced())
	assert.Equal(t, "pricing", updated.LastPageVisited())
	assert.Equal(t, int64(300), updated.DurationSeconds())
}

func TestRecordVisit_GapBeyondTimeoutStartsNewRow(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	existing, err := visitor.StartSession("sess-1", "203.0.113.7", "ua", "home", start)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(1))

	var finalized *visitor.Session
	var created *visitor.Session
	repo := &fakeRepo{
		findActiveFn: func(ctx context.Context, sessionID string) (*visitor.Session, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, s *visitor.Session) error {
			finalized = s
			return nil
		},
		createFn: func(ctx context.Context, s *visitor.Session) error {
			created = s
			return nil
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	uc.Execute(context.Background(), RecordVisitCommand{
		SessionID: "sess-1",
		PageID:    "pricing",
		Now:       start.Add(testTimeout + time.Minute),
	})

	require.NotNil(t, finalized)
	assert.False(t, finalized.IsActive())
	// The stale row keeps its original stats untouched.
	assert.Equal(t, 1, finalized.PageVisitCount())
	assert.True(t, finalized.IsBounced())

	require.NotNil(t, created)
	assert.True(t, created.IsActive())
	assert.Equal(t, 1, created.PageVisitCount())
	assert.Equal(t, "pricing", created.LastPageVisited())
}

func TestRecordVisit_InsertConflictFoldsIntoWinner(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	winner, err := visitor.StartSession("sess-1", "203.0.113.7", "ua", "home", start)
	require.NoError(t, err)
	require.NoError(t, winner.SetID(2))

	lookups := 0
	var updated *visitor.Session
	repo := &fakeRepo{
		findActiveFn: func(ctx context.Context, sessionID string) (*visitor.Session, error) {
			lookups++
			if lookups == 1 {
				return nil, visitor.ErrSessionNotFound
			}
			return winner, nil
		},
		createFn: func(ctx context.Context, s *visitor.Session) error {
			return apperrors.NewConflictError("session already active")
		},
		updateFn: func(ctx context.Context, s *visitor.Session) error {
			updated = s
			return nil
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	uc.Execute(context.Background(), RecordVisitCommand{
		SessionID: "sess-1",
		PageID:    "pricing",
		Now:       start.Add(time.Second),
	})

	assert.Equal(t, 2, lookups)
	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.PageVisitCount())
	assert.Equal(t, "pricing", updated.LastPageVisited())
}

func TestRecordVisit_StorageErrorIsSwallowed(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *visitor.Session) error {
			return errors.New("connection refused")
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	assert.NotPanics(t, func() {
		uc.Execute(context.Background(), RecordVisitCommand{
			SessionID: "sess-1",
			PageID:    "home",
		})
	})
}

func TestRecordVisit_EmptyPageIDRejected(t *testing.T) {
	created := false
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *visitor.Session) error {
			created = true
			return nil
		},
	}
	uc := NewRecordVisitUseCase(repo, passthroughTx{}, testTimeout, noopLogger{})

	uc.Execute(context.Background(), RecordVisitCommand{
		SessionID: "sess-1",
		PageID:    "   ",
	})

	assert.False(t, created)
}
