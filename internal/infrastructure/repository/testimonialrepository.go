package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ilmpay/ilmpay/internal/domain/content"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/mappers"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
	"github.com/ilmpay/ilmpay/internal/shared/db"
)

// TestimonialRepository is the GORM implementation of content.TestimonialRepository.
type TestimonialRepository struct {
	db     *gorm.DB
	mapper mappers.TestimonialMapper
}

// NewTestimonialRepository creates a new TestimonialRepository.
func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{
		db:     db,
		mapper: mappers.NewTestimonialMapper(),
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial *content.Testimonial) error {
	model := r.mapper.ToModel(testimonial)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return testimonial.SetID(model.ID)
}

func (r *TestimonialRepository) Update(ctx context.Context, testimonial *content.Testimonial) error {
	model := r.mapper.ToModel(testimonial)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TestimonialModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update testimonial: %w", result.Error)
	}

	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uint) (*content.Testimonial, error) {
	var model models.TestimonialModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find testimonial: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TestimonialRepository) ListActive(ctx context.Context) ([]*content.Testimonial, error) {
	var list []models.TestimonialModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent(), db.OrderedByDisplay()).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	testimonials := make([]*content.Testimonial, 0, len(list))
	for i := range list {
		testimonial, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, testimonial)
	}
	return testimonials, nil
}

func (r *TestimonialRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.Testimonial, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.TestimonialModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent()).
		Where("id IN ?", ids).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials by ids: %w", err)
	}

	testimonials := make([]*content.Testimonial, 0, len(list))
	for i := range list {
		testimonial, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, testimonial)
	}
	return testimonials, nil
}
