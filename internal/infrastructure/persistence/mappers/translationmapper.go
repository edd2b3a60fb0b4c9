package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/translation"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// TranslationMapper handles the conversion between Translation domain
// entities and persistence models.
type TranslationMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *translation.Translation) *models.TranslationModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.TranslationModel) (*translation.Translation, error)
}

// TranslationMapperImpl is the concrete implementation of TranslationMapper.
type TranslationMapperImpl struct{}

// NewTranslationMapper creates a new TranslationMapper.
func NewTranslationMapper() TranslationMapper {
	return &TranslationMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *TranslationMapperImpl) ToModel(entity *translation.Translation) *models.TranslationModel {
	if entity == nil {
		return nil
	}
	return &models.TranslationModel{
		ID:           entity.ID(),
		Key:          entity.Key(),
		LanguageCode: entity.LanguageCode(),
		Text:         entity.Text(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *TranslationMapperImpl) ToDomain(model *models.TranslationModel) (*translation.Translation, error) {
	if model == nil {
		return nil, nil
	}
	return translation.ReconstructTranslation(
		model.ID,
		model.Key,
		model.LanguageCode,
		model.Text,
		model.UpdatedAt,
	)
}
