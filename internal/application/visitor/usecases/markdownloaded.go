package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// MarkDownloadedUseCase flags a visitor session as converted after the
// landing page reports an app-download click.
type MarkDownloadedUseCase struct {
	repo   visitor.Repository
	logger logger.Interface
}

// NewMarkDownloadedUseCase creates a new MarkDownloadedUseCase.
func NewMarkDownloadedUseCase(repo visitor.Repository, logger logger.Interface) *MarkDownloadedUseCase {
	return &MarkDownloadedUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute flags the session's most recent row.
func (uc *MarkDownloadedUseCase) Execute(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return visitor.ErrEmptySessionID
	}

	if err := uc.repo.MarkDownloaded(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to mark session downloaded: %w", err)
	}

	uc.logger.Debugw("session marked as downloaded", "session_id", sessionID)
	return nil
}
