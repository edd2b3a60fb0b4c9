// Package usecases implements the visitor tracking and analytics
// application services.
package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecordVisitCommand carries one "page visited" event.
type RecordVisitCommand struct {
	SessionID string
	IPAddress string
	UserAgent string
	PageID    string
	Now       time.Time
}

// RecordVisitUseCase folds a page view into the visitor's open session or
// starts a new one. Visit tracking is fire-and-forget: every failure is
// logged and swallowed so it can never affect the request that triggered it.
type RecordVisitUseCase struct {
	repo    visitor.Repository
	tx      Transactor
	timeout time.Duration
	logger  logger.Interface
}

// NewRecordVisitUseCase creates a new RecordVisitUseCase. timeout is the
// session inactivity timeout.
func NewRecordVisitUseCase(repo visitor.Repository, tx Transactor, timeout time.Duration, logger logger.Interface) *RecordVisitUseCase {
	return &RecordVisitUseCase{
		repo:    repo,
		tx:      tx,
		timeout: timeout,
		logger:  logger,
	}
}

// Execute records the visit. It never returns an error.
func (uc *RecordVisitUseCase) Execute(ctx context.Context, cmd RecordVisitCommand) {
	if err := uc.execute(ctx, cmd); err != nil {
		uc.logger.Errorw("failed to record visit",
			"session_id", cmd.SessionID,
			"page_id", cmd.PageID,
			"error", err,
		)
	}
}

func (uc *RecordVisitUseCase) execute(ctx context.Context, cmd RecordVisitCommand) error {
	now := cmd.Now
	if now.IsZero() {
		now = biztime.NowUTC()
	}

	return uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.repo.FindActiveBySessionID(txCtx, cmd.SessionID)
		switch {
		case err == nil:
			if existing.GapExceeds(now, uc.timeout) {
				// The open row went stale before the sweeper got to it:
				// finalize it here, then start a fresh row for this view.
				existing.Finalize()
				if err := uc.repo.Update(txCtx, existing); err != nil {
					return err
				}
				return uc.startSession(txCtx, cmd, now)
			}

			if err := existing.RecordPageView(cmd.PageID, now); err != nil {
				return err
			}
			return uc.repo.Update(txCtx, existing)

		case errors.Is(err, visitor.ErrSessionNotFound):
			return uc.startSession(txCtx, cmd, now)

		default:
			return err
		}
	})
}

// startSession inserts a fresh row. A concurrent tracker for the same
// session ID may win the insert race; the unique active-row constraint
// turns that into a conflict, which we resolve by folding this view into
// the row the winner created.
func (uc *RecordVisitUseCase) startSession(ctx context.Context, cmd RecordVisitCommand, now time.Time) error {
	session, err := visitor.StartSession(cmd.SessionID, cmd.IPAddress, cmd.UserAgent, cmd.PageID, now)
	if err != nil {
		return err
	}

	err = uc.repo.Create(ctx, session)
	if err == nil {
		return nil
	}
	if !apperrors.IsConflictError(err) {
		return err
	}

	uc.logger.Debugw("concurrent session insert detected, folding into winner",
		"session_id", cmd.SessionID)

	winner, err := uc.repo.FindActiveBySessionID(ctx, cmd.SessionID)
	if err != nil {
		return err
	}
	if err := winner.RecordPageView(cmd.PageID, now); err != nil {
		return err
	}
	return uc.repo.Update(ctx, winner)
}
