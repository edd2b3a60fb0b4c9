package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/domain/content"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// FAQService manages the FAQ section. Answers are authored in markdown;
// responses carry both the raw source (for the admin editor) and rendered
// HTML sanitized for embedding in the public page.
type FAQService struct {
	repo      content.FAQRepository
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

// NewFAQService creates a new FAQService.
func NewFAQService(repo content.FAQRepository, logger logger.Interface) *FAQService {
	return &FAQService{
		repo: repo,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// ListActive returns the active FAQ entries in display order.
func (s *FAQService) ListActive(ctx context.Context) ([]dto.FAQResponse, error) {
	faqs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	result := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		result = append(result, s.toFAQResponse(f))
	}
	return result, nil
}

// Get returns one FAQ entry by ID.
func (s *FAQService) Get(ctx context.Context, id uint) (*dto.FAQResponse, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("faq not found")
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	resp := s.toFAQResponse(faq)
	return &resp, nil
}

// Create adds a new FAQ entry.
func (s *FAQService) Create(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	faq, err := content.NewFAQ(req.Question, req.Answer, req.DisplayOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	s.logger.Infow("faq created", "id", faq.ID())

	resp := s.toFAQResponse(faq)
	return &resp, nil
}

// Update replaces a FAQ entry's editable fields.
func (s *FAQService) Update(ctx context.Context, id uint, req dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("faq not found")
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}

	if err := faq.Update(req.Question, req.Answer, req.DisplayOrder, req.Active); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	resp := s.toFAQResponse(faq)
	return &resp, nil
}

// Delete soft-deletes a FAQ entry.
func (s *FAQService) Delete(ctx context.Context, id uint) error {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return apperrors.NewNotFoundError("faq not found")
		}
		return fmt.Errorf("failed to get faq: %w", err)
	}

	faq.Deactivate()
	if err := s.repo.Update(ctx, faq); err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	s.logger.Infow("faq deleted", "id", id)
	return nil
}

// Reorder rewrites display positions following the order of the given IDs.
func (s *FAQService) Reorder(ctx context.Context, req dto.ReorderRequest) error {
	faqs, err := s.repo.ListActiveByIDs(ctx, req.IDs)
	if err != nil {
		return fmt.Errorf("failed to load faqs for reorder: %w", err)
	}
	if len(faqs) != len(req.IDs) {
		return apperrors.NewValidationError("reorder list references unknown or inactive faqs")
	}

	byID := make(map[uint]*content.FAQ, len(faqs))
	for _, f := range faqs {
		byID[f.ID()] = f
	}

	for position, id := range req.IDs {
		f := byID[id]
		f.SetDisplayOrder(position)
		if err := s.repo.Update(ctx, f); err != nil {
			return fmt.Errorf("failed to reorder faq %d: %w", id, err)
		}
	}

	return nil
}

// renderAnswer converts markdown to sanitized HTML. A render failure falls
// back to an empty string rather than failing the read path.
func (s *FAQService) renderAnswer(answer string) string {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(answer), &buf); err != nil {
		s.logger.Warnw("failed to render faq answer markdown", "error", err)
		return ""
	}
	return s.sanitizer.Sanitize(buf.String())
}

func (s *FAQService) toFAQResponse(f *content.FAQ) dto.FAQResponse {
	return dto.FAQResponse{
		ID:           f.ID(),
		Question:     f.Question(),
		Answer:       f.Answer(),
		AnswerHTML:   s.renderAnswer(f.Answer()),
		DisplayOrder: f.DisplayOrder(),
		Active:       f.IsActive(),
	}
}
