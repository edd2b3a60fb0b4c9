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

// SupportLogoService manages the partner support logos section.
type SupportLogoService struct {
	repo   content.SupportLogoRepository
	logger logger.Interface
}

// NewSupportLogoService creates a new SupportLogoService.
func NewSupportLogoService(repo content.SupportLogoRepository, logger logger.Interface) *SupportLogoService {
	return &SupportLogoService{
		repo:   repo,
		logger: logger,
	}
}

// ListActive returns the active support logos in display order.
func (s *SupportLogoService) ListActive(ctx context.Context) ([]dto.SupportLogoResponse, error) {
	logos, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list support logos: %w", err)
	}

	result := make([]dto.SupportLogoResponse, 0, len(logos))
	for _, l := range logos {
		result = append(result, toSupportLogoResponse(l))
	}
	return result, nil
}

// Get returns one support logo by ID.
func (s *SupportLogoService) Get(ctx context.Context, id uint) (*dto.SupportLogoResponse, error) {
	logo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("support logo not found")
		}
		return nil, fmt.Errorf("failed to get support logo: %w", err)
	}

	resp := toSupportLogoResponse(logo)
	return &resp, nil
}

// Create adds a new support logo.
func (s *SupportLogoService) Create(ctx context.Context, req dto.CreateSupportLogoRequest) (*dto.SupportLogoResponse, error) {
	logo, err := content.NewSupportLogo(req.Name, req.ImageURL, req.WebsiteURL, req.DisplayOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, logo); err != nil {
		return nil, fmt.Errorf("failed to create support logo: %w", err)
	}

	s.logger.Infow("support logo created", "id", logo.ID(), "name", logo.Name())

	resp := toSupportLogoResponse(logo)
	return &resp, nil
}

// Update replaces a support logo's editable fields.
func (s *SupportLogoService) Update(ctx context.Context, id uint, req dto.UpdateSupportLogoRequest) (*dto.SupportLogoResponse, error) {
	logo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("support logo not found")
		}
		return nil, fmt.Errorf("failed to get support logo: %w", err)
	}

	if err := logo.Update(req.Name, req.ImageURL, req.WebsiteURL, req.DisplayOrder, req.Active); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, logo); err != nil {
		return nil, fmt.Errorf("failed to update support logo: %w", err)
	}

	resp := toSupportLogoResponse(logo)
	return &resp, nil
}

// Delete soft-deletes a support logo.
func (s *SupportLogoService) Delete(ctx context.Context, id uint) error {
	logo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return apperrors.NewNotFoundError("support logo not found")
		}
		return fmt.Errorf("failed to get support logo: %w", err)
	}

	logo.Deactivate()
	if err := s.repo.Update(ctx, logo); err != nil {
		return fmt.Errorf("failed to delete support logo: %w", err)
	}

	s.logger.Infow("support logo deleted", "id", id)
	return nil
}

// Reorder rewrites display positions following the order of the given IDs.
func (s *SupportLogoService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	logos, err := s.repo.ListActiveByIDs(ctx, req.IDs)
	if err != nil {
		return fmt.Errorf("failed to load support logos for reorder: %w", err)
	}
	if len(logos) != len(req.IDs) {
		return apperrors.NewValidationError("reorder list references unknown or inactive support logos")
	}

	byID := make(map[uint]*content.SupportLogo, len(logos))
	for _, l := range logos {
		byID[l.ID()] = l
	}

	for position, id := range req.IDs {
		l := byID[id]
		l.SetDisplayOrder(position)
		if err := s.repo.Update(ctx, l); err != nil {
			return fmt.Errorf("failed to reorder support logo %d: %w", id, err)
		}
	}

	return nil
}

func toSupportLogoResponse(l *content.SupportLogo) dto.SupportLogoResponse {
	return dto.SupportLogoResponse{
		ID:           l.ID(),
		Name:         l.Name(),
		ImageURL:     l.ImageURL(),
		WebsiteURL:   l.WebsiteURL(),
		DisplayOrder: l.DisplayOrder(),
		Active:       l.IsActive(),
	}
}
