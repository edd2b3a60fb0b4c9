package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/biztime"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// SweepExpiredSessionsUseCase reclassifies sessions whose inactivity gap
// exceeded the session timeout as finalized. It runs on a schedule and is
// also invoked lazily before "currently active" counts.
type SweepExpiredSessionsUseCase struct {
	repo    visitor.Repository
	tx      Transactor
	timeout time.Duration
	logger  logger.Interface
}

// NewSweepExpiredSessionsUseCase creates a new SweepExpiredSessionsUseCase.
func NewSweepExpiredSessionsUseCase(repo visitor.Repository, tx Transactor, timeout time.Duration, logger logger.Interface) *SweepExpiredSessionsUseCase {
	return &SweepExpiredSessionsUseCase{
		repo:    repo,
		tx:      tx,
		timeout: timeout,
		logger:  logger,
	}
}

// Execute finalizes all sessions idle past the timeout, in one transaction
// per batch so no locks are held across batches. Returns the swept count.
func (uc *SweepExpiredSessionsUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()
	cutoff := now.Add(-uc.timeout)

	var swept int64
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.repo.FinalizeExpired(txCtx, cutoff)
		if err != nil {
			return err
		}
		swept = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}

	if swept > 0 {
		uc.logger.Infow("expired sessions swept",
			"count", swept,
			"cutoff", cutoff,
		)
	}
	return int(swept), nil
}
