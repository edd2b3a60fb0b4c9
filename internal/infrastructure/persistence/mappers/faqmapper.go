package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/content"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// FAQMapper handles the conversion between FAQ domain entities and
// persistence models.
type FAQMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *content.FAQ) *models.FAQModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.FAQModel) (*content.FAQ, error)
}

// FAQMapperImpl is the concrete implementation of FAQMapper.
type FAQMapperImpl struct{}

// NewFAQMapper creates a new FAQMapper.
func NewFAQMapper() FAQMapper {
	return &FAQMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *FAQMapperImpl) ToModel(entity *content.FAQ) *models.FAQModel {
	if entity == nil {
		return nil
	}
	return &models.FAQModel{
		ID:           entity.ID(),
		Question:     entity.Question(),
		Answer:       entity.Answer(),
		DisplayOrder: entity.DisplayOrder(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *FAQMapperImpl) ToDomain(model *models.FAQModel) (*content.FAQ, error) {
	if model == nil {
		return nil, nil
	}
	return content.ReconstructFAQ(
		model.ID,
		model.Question,
		model.Answer,
		model.DisplayOrder,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
