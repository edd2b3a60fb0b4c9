package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/content"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// SupportLogoMapper handles the conversion between SupportLogo domain
// entities and persistence models.
type SupportLogoMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *content.SupportLogo) *models.SupportLogoModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.SupportLogoModel) (*content.SupportLogo, error)
}

// SupportLogoMapperImpl is the concrete implementation of SupportLogoMapper.
type SupportLogoMapperImpl struct{}

// NewSupportLogoMapper creates a new SupportLogoMapper.
func NewSupportLogoMapper() SupportLogoMapper {
	return &SupportLogoMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *SupportLogoMapperImpl) ToModel(entity *content.SupportLogo) *models.SupportLogoModel {
	if entity == nil {
		return nil
	}
	return &models.SupportLogoModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		ImageURL:     entity.ImageURL(),
		WebsiteURL:   entity.WebsiteURL(),
		DisplayOrder: entity.DisplayOrder(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *SupportLogoMapperImpl) ToDomain(model *models.SupportLogoModel) (*content.SupportLogo, error) {
	if model == nil {
		return nil, nil
	}
	return content.ReconstructSupportLogo(
		model.ID,
		model.Name,
		model.ImageURL,
		model.WebsiteURL,
		model.DisplayOrder,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
