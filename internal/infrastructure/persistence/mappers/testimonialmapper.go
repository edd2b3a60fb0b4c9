package mappers

import (
	"github.com/ilmpay/ilmpay/internal/domain/content"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// TestimonialMapper handles the conversion between Testimonial domain
// entities and persistence models.
type TestimonialMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *content.Testimonial) *models.TestimonialModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.TestimonialModel) (*content.Testimonial, error)
}

// TestimonialMapperImpl is the concrete implementation of TestimonialMapper.
type TestimonialMapperImpl struct{}

// NewTestimonialMapper creates a new TestimonialMapper.
func NewTestimonialMapper() TestimonialMapper {
	return &TestimonialMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *TestimonialMapperImpl) ToModel(entity *content.Testimonial) *models.TestimonialModel {
	if entity == nil {
		return nil
	}
	return &models.TestimonialModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Comment:      entity.Comment(),
		AvatarURL:    entity.AvatarURL(),
		Rating:       entity.Rating(),
		DisplayOrder: entity.DisplayOrder(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *TestimonialMapperImpl) ToDomain(model *models.TestimonialModel) (*content.Testimonial, error) {
	if model == nil {
		return nil, nil
	}
	return content.ReconstructTestimonial(
		model.ID,
		model.Name,
		model.Comment,
		model.AvatarURL,
		model.Rating,
		model.DisplayOrder,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
