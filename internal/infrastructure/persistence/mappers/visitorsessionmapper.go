// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/visitor"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// VisitorSessionMapper handles the conversion between Session domain entities
// and persistence models.
type VisitorSessionMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *visitor.Session) *models.VisitorSessionModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.VisitorSessionModel) (*visitor.Session, error)
}

// VisitorSessionMapperImpl is the concrete implementation of VisitorSessionMapper.
type VisitorSessionMapperImpl struct{}

// NewVisitorSessionMapper creates a new VisitorSessionMapper.
func NewVisitorSessionMapper() VisitorSessionMapper {
	return &VisitorSessionMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *VisitorSessionMapperImpl) ToModel(entity *visitor.Session) *models.VisitorSessionModel {
	if entity == nil {
		return nil
	}

	// active_key carries the session ID only while the row is active, so
	// the unique index admits one active row per session but any number of
	// finalized ones.
	var activeKey *string
	if entity.IsActive() {
		key := entity.SessionID()
		activeKey = &key
	}

	return &models.VisitorSessionModel{
		ID:              entity.ID(),
		SessionID:       entity.SessionID(),
		ActiveKey:       activeKey,
		IPAddress:       entity.IPAddress(),
		UserAgent:       entity.UserAgent(),
		FirstVisitTime:  entity.FirstVisitTime(),
		LastActiveTime:  entity.LastActiveTime(),
		LastPageVisited: entity.LastPageVisited(),
		PageVisitCount:  entity.PageVisitCount(),
		Active:          entity.IsActive(),
		Bounced:         entity.IsBounced(),
		SessionDuration: entity.DurationSeconds(),
		Downloaded:      entity.IsDownloaded(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *VisitorSessionMapperImpl) ToDomain(model *models.VisitorSessionModel) (*visitor.Session, error) {
	if model == nil {
		return nil, nil
	}
	return visitor.ReconstructSession(
		model.ID,
		model.SessionID,
		model.IPAddress,
		model.UserAgent,
		model.FirstVisitTime,
		model.LastActiveTime,
		model.LastPageVisited,
		model.PageVisitCount,
		model.Active,
		model.Bounced,
		model.SessionDuration,
		model.Downloaded,
	)
}
