// Package services implements the content management application services:
// CRUD over the landing page's benefits, testimonials, FAQs, and support
// logos. Delete is always a soft delete, and reordering rewrites display
// positions from the requested ID order.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/domain/content"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// BenefitService manages the benefits section.
type BenefitService struct {
	repo   content.BenefitRepository
	logger logger.Interface
}

// NewBenefitService creates a new BenefitService.
func NewBenefitService(repo content.BenefitRepository, logger logger.Interface) *BenefitService {
	return &BenefitService{
		repo:   repo,
		logger: logger,
	}
}

// ListActive returns the active benefits in display order.
func (s *BenefitService) ListActive(ctx context.Context) ([]dto.BenefitResponse, error) {
	benefits, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	result := make([]dto.BenefitResponse, 0, len(benefits))
	for _, b := range benefits {
		result = append(result, toBenefitResponse(b))
	}
	return result, nil
}

// Get returns one benefit by ID, including inactive ones for admin views.
func (s *BenefitService) Get(ctx context.Context, id uint) (*dto.BenefitResponse, error) {
	benefit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("benefit not found")
		}
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}

	resp := toBenefitResponse(benefit)
	return &resp, nil
}

// Create adds a new benefit.
func (s *BenefitService) Create(ctx context.Context, req dto.CreateBenefitRequest) (*dto.BenefitResponse, error) {
	benefit, err := content.NewBenefit(req.Title, req.Description, req.DisplayOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, benefit); err != nil {
		return nil, fmt.Errorf("failed to create benefit: %w", err)
	}

	s.logger.Infow("benefit created", "id", benefit.ID(), "title", benefit.Title())

	resp := toBenefitResponse(benefit)
	return &resp, nil
}

// Update replaces a benefit's editable fields.
func (s *BenefitService) Update(ctx context.Context, id uint, req dto.UpdateBenefitRequest) (*dto.BenefitResponse, error) {
	benefit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("benefit not found")
		}
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}

	if err := benefit.Update(req.Title, req.Description, req.DisplayOrder, req.Active); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, benefit); err != nil {
		return nil, fmt.Errorf("failed to update benefit: %w", err)
	}

	resp := toBenefitResponse(benefit)
	return &resp, nil
}

// Delete soft-deletes a benefit; the row survives for admin views.
func (s *BenefitService) Delete(ctx context.Context, id uint) error {
	benefit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return apperrors.NewNotFoundError("benefit not found")
		}
		return fmt.Errorf("failed to get benefit: %w", err)
	}

	benefit.Deactivate()
	if err := s.repo.Update(ctx, benefit); err != nil {
		return fmt.Errorf("failed to delete benefit: %w", err)
	}

	s.logger.Infow("benefit deleted", "id", id)
	return nil
}

// Reorder rewrites display positions following the order of the given IDs.
func (s *BenefitService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	benefits, err := s.repo.ListActiveByIDs(ctx, req.IDs)
	if err != nil {
		return fmt.Errorf("failed to load benefits for reorder: %w", err)
	}
	if len(benefits) != len(req.IDs) {
		return apperrors.NewValidationError("reorder list references unknown or inactive benefits")
	}

	byID := make(map[uint]*content.Benefit, len(benefits))
	for _, b := range benefits {
		byID[b.ID()] = b
	}

	for position, id := range req.IDs {
		b := byID[id]
		b.SetDisplayOrder(position)
		if err := s.repo.Update(ctx, b); err != nil {
			return fmt.Errorf("failed to reorder benefit %d: %w", id, err)
		}
	}

	return nil
}

func toBenefitResponse(b *content.Benefit) dto.BenefitResponse {
	return dto.BenefitResponse{
		ID:           b.ID(),
		Title:        b.Title(),
		Description:  b.Description(),
		DisplayOrder: b.DisplayOrder(),
		Active:       b.IsActive(),
	}
}
