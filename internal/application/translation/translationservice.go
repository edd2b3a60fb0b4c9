// Package translation implements the UI translation application service:
// whole per-language bundles for the public site with a cache in front, and
// admin upserts that evict the affected language.
package translation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilmpay/ilmpay/internal/domain/translation"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

// DefaultLanguage is served when a requested language has no translations.
const DefaultLanguage = "en"

// BundleCache caches whole per-language bundles. A nil map with nil error is
// a cache miss. Cache failures degrade to direct store queries.
type BundleCache interface {
	GetBundle(ctx context.Context, languageCode string) (map[string]string, error)
	SetBundle(ctx context.Context, languageCode string, bundle map[string]string) error
	Evict(ctx context.Context, languageCode string) error
}

// UpsertRequest creates or replaces one translated string.
type UpsertRequest struct {
	Key          string `json:"key" validate:"required,max=255"`
	LanguageCode string `json:"languageCode" validate:"required,max=35"`
	Text         string `json:"text" validate:"required"`
}

// Service serves and manages translation bundles.
type Service struct {
	repo   translation.Repository
	cache  BundleCache
	logger logger.Interface
}

// NewService creates a new translation Service. cache may be nil when redis
// is disabled.
func NewService(repo translation.Repository, cache BundleCache, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// GetBundle returns the key-to-text bundle for a language. Unknown or empty
// languages fall back to the default language's bundle.
func (s *Service) GetBundle(ctx context.Context, languageCode string) (map[string]string, error) {
	normalized, err := translation.NormalizeLanguage(languageCode)
	if err != nil {
		normalized = DefaultLanguage
	}

	bundle, err := s.loadBundle(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if len(bundle) == 0 && normalized != DefaultLanguage {
		return s.loadBundle(ctx, DefaultLanguage)
	}
	return bundle, nil
}

func (s *Service) loadBundle(ctx context.Context, languageCode string) (map[string]string, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBundle(ctx, languageCode)
		if err != nil {
			s.logger.Warnw("translation cache read failed", "language", languageCode, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	translations, err := s.repo.ListByLanguage(ctx, languageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	bundle := make(map[string]string, len(translations))
	for _, tr := range translations {
		bundle[tr.Key()] = tr.Text()
	}

	if s.cache != nil && len(bundle) > 0 {
		if err := s.cache.SetBundle(ctx, languageCode, bundle); err != nil {
			s.logger.Warnw("translation cache write failed", "language", languageCode, "error", err)
		}
	}

	return bundle, nil
}

// Upsert creates or replaces one translated string and evicts the affected
// language bundle.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) error {
	tr, err := translation.NewTranslation(req.Key, req.LanguageCode, req.Text)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Upsert(ctx, tr); err != nil {
		return fmt.Errorf("failed to upsert translation: %w", err)
	}

	s.evict(ctx, tr.LanguageCode())
	return nil
}

// Delete removes one (key, language) pair and evicts the affected bundle.
func (s *Service) Delete(ctx context.Context, key, languageCode string) error {
	normalized, err := translation.NormalizeLanguage(languageCode)
	if err != nil {
		return apperrors.NewValidationError("invalid language code")
	}

	if err := s.repo.Delete(ctx, key, normalized); err != nil {
		if errors.Is(err, translation.ErrNotFound) {
			return apperrors.NewNotFoundError("translation not found")
		}
		return fmt.Errorf("failed to delete translation: %w", err)
	}

	s.evict(ctx, normalized)
	return nil
}

// ListLanguages returns the language codes that have translations.
func (s *Service) ListLanguages(ctx context.Context) ([]string, error) {
	languages, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return languages, nil
}

func (s *Service) evict(ctx context.Context, languageCode string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Evict(ctx, languageCode); err != nil {
		// A failed eviction only delays visibility until the TTL expires.
		s.logger.Warnw("translation cache eviction failed", "language", languageCode, "error", err)
	}
}
