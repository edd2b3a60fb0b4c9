package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/domain/content"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// TestimonialService manages the testimonials section. Visitor-facing
// comment text is stripped of all HTML before it is stored.
type TestimonialService struct {
	repo      content.TestimonialRepository
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(repo content.TestimonialRepository, logger logger.Interface) *TestimonialService {
	return &TestimonialService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// ListActive returns the active testimonials in display order.
func (s *TestimonialService) ListActive(ctx context.Context) ([]dto.TestimonialResponse, error) {
	testimonials, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	result := make([]dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		result = append(result, toTestimonialResponse(t))
	}
	return result, nil
}

// Get returns one testimonial by ID.
func (s *TestimonialService) Get(ctx context.Context, id uint) (*dto.TestimonialResponse, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("testimonial not found")
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	resp := toTestimonialResponse(testimonial)
	return &resp, nil
}

// Create adds a new testimonial.
func (s *TestimonialService) Create(ctx context.Context, req dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial, err := content.NewTestimonial(
		s.sanitizer.Sanitize(req.Name),
		s.sanitizer.Sanitize(req.Comment),
		req.AvatarURL,
		req.Rating,
		req.DisplayOrder,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.logger.Infow("testimonial created", "id", testimonial.ID(), "name", testimonial.Name())

	resp := toTestimonialResponse(testimonial)
	return &resp, nil
}

// Update replaces a testimonial's editable fields.
func (s *TestimonialService) Update(ctx context.Context, id uint, req dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("testimonial not found")
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	err = testimonial.Update(
		s.sanitizer.Sanitize(req.Name),
		s.sanitizer.Sanitize(req.Comment),
		req.AvatarURL,
		req.Rating,
		req.DisplayOrder,
		req.Active,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	resp := toTestimonialResponse(testimonial)
	return &resp, nil
}

// Delete soft-deletes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return apperrors.NewNotFoundError("testimonial not found")
		}
		return fmt.Errorf("failed to get testimonial: %w", err)
	}

	testimonial.Deactivate()
	if err := s.repo.Update(ctx, testimonial); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	s.logger.Infow("testimonial deleted", "id", id)
	return nil
}

// Reorder rewrites display positions following the order of the given IDs.
func (s *TestimonialService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	testimonials, err := s.repo.ListActiveByIDs(ctx, req.IDs)
	if err != nil {
		return fmt.Errorf("failed to load testimonials for reorder: %w", err)
	}
	if len(testimonials) != len(req.IDs) {
		return apperrors.NewValidationError("reorder list references unknown or inactive testimonials")
	}

	byID := make(map[uint]*content.Testimonial, len(testimonials))
	for _, t := range testimonials {
		byID[t.ID()] = t
	}

	for position, id := range req.IDs {
		t := byID[id]
		t.SetDisplayOrder(position)
		if err := s.repo.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to reorder testimonial %d: %w", id, err)
		}
	}

	return nil
}

func toTestimonialResponse(t *content.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{
		ID:           t.ID(),
		Name:         t.Name(),
		Comment:      t.Comment(),
		AvatarURL:    t.AvatarURL(),
		Rating:       t.Rating(),
		DisplayOrder: t.DisplayOrder(),
		Active:       t.IsActive(),
	}
}
