package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/content"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// BenefitMapper handles the conversion between Benefit domain entities and
// persistence models.
type BenefitMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *content.Benefit) *models.BenefitModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.BenefitModel) (*content.Benefit, error)
}

// BenefitMapperImpl is the concrete implementation of BenefitMapper.
type BenefitMapperImpl struct{}

// NewBenefitMapper creates a new BenefitMapper.
func NewBenefitMapper() BenefitMapper {
	return &BenefitMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *BenefitMapperImpl) ToModel(entity *content.Benefit) *models.BenefitModel {
	if entity == nil {
		return nil
	}
	return &models.BenefitModel{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		DisplayOrder: entity.DisplayOrder(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *BenefitMapperImpl) ToDomain(model *models.BenefitModel) (*content.Benefit, error) {
	if model == nil {
		return nil, nil
	}
	return content.ReconstructBenefit(
		model.ID,
		model.Title,
		model.Description,
		model.DisplayOrder,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
