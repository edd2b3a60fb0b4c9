package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/mappers"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
	"github.com/ilmpay/ilmpay/internal/shared/db"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
)

// VisitorSessionRepository is the GORM implementation of visitor.Repository.
type VisitorSessionRepository struct {
	db     *gorm.DB
	mapper mappers.VisitorSessionMapper
}

// NewVisitorSessionRepository creates a new VisitorSessionRepository.
func NewVisitorSessionRepository(db *gorm.DB) *VisitorSessionRepository {
	return &VisitorSessionRepository{
		db:     db,
		mapper: mappers.NewVisitorSessionMapper(),
	}
}

// Create inserts a new session row. When a concurrent insert for the same
// session ID wins the race on the unique active-row index, the error is
// reported as a conflict so the caller can fold into the winner.
func (r *VisitorSessionRepository) Create(ctx context.Context, session *visitor.Session) error {
	model := r.mapper.ToModel(session)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("an active row already exists for this session", err.Error())
		}
		return fmt.Errorf("failed to create visitor session: %w", err)
	}

	return session.SetID(model.ID)
}

// Update persists the current state of an existing row. Select("*") forces
// zero values (active=false, bounced=false) to be written too.
func (r *VisitorSessionRepository) Update(ctx context.Context, session *visitor.Session) error {
	model := r.mapper.ToModel(session)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VisitorSessionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update visitor session: %w", result.Error)
	}

	return nil
}

// FindActiveBySessionID returns the newest active row for the session
// identifier, or visitor.ErrSessionNotFound when the session has no open row.
func (r *VisitorSessionRepository) FindActiveBySessionID(ctx context.Context, sessionID string) (*visitor.Session, error) {
	var model models.VisitorSessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("session_id = ? AND active = ?", sessionID, true).
		Order("last_active_time DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, visitor.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FinalizeExpired closes every active row whose last activity is at or
// before the cutoff: the active flag is cleared, the active_key slot is
// released, and the session duration is frozen. Durations are computed in
// Go so the same code runs on MySQL and SQLite; the sweep cadence keeps
// batches small.
func (r *VisitorSessionRepository) FinalizeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var expired []models.VisitorSessionModel
	err := tx.
		Select("id", "first_visit_time", "last_active_time").
		Where("active = ? AND last_active_time <= ?", true, cutoff).
		Find(&expired).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load expired sessions: %w", err)
	}

	for _, row := range expired {
		duration := int64(row.LastActiveTime.Sub(row.FirstVisitTime) / time.Second)
		if duration < 0 {
			duration = 0
		}

		result := tx.
			Model(&models.VisitorSessionModel{}).
			Where("id = ? AND active = ?", row.ID, true).
			Updates(map[string]interface{}{
				"active":           false,
				"active_key":       nil,
				"session_duration": duration,
			})
		if result.Error != nil {
			return 0, fmt.Errorf("failed to finalize expired session: %w", result.Error)
		}
	}

	return int64(len(expired)), nil
}

// MarkDownloaded flags the session's most recent row as converted.
func (r *VisitorSessionRepository) MarkDownloaded(ctx context.Context, sessionID string) error {
	var model models.VisitorSessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("session_id = ?", sessionID).
		Order("last_active_time DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return visitor.ErrSessionNotFound
		}
		return fmt.Errorf("failed to find session: %w", err)
	}

	result := tx.
		Model(&models.VisitorSessionModel{}).
		Where("id = ?", model.ID).
		Update("downloaded", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark session downloaded: %w", result.Error)
	}

	return nil
}
