package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ilmpay/ilmpay/internal/domain/translation"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/mappers"
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
	"github.com/ilmpay/ilmpay/internal/shared/db"
)

// TranslationRepository is the GORM implementation of translation.Repository.
type TranslationRepository struct {
	db     *gorm.DB
	mapper mappers.TranslationMapper
}

// NewTranslationRepository creates a new TranslationRepository.
func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{
		db:     db,
		mapper: mappers.NewTranslationMapper(),
	}
}

// Upsert inserts the (key, language) pair or replaces its text on conflict.
func (r *TranslationRepository) Upsert(ctx context.Context, tr *translation.Translation) error {
	model := r.mapper.ToModel(tr)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}, {Name: "language_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert translation: %w", err)
	}

	return nil
}

// Delete removes one (key, language) pair.
func (r *TranslationRepository) Delete(ctx context.Context, key, languageCode string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("key = ? AND language_code = ?", key, languageCode).
		Delete(&models.TranslationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete translation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return translation.ErrNotFound
	}

	return nil
}

// ListByLanguage returns every translation for one language code.
func (r *TranslationRepository) ListByLanguage(ctx context.Context, languageCode string) ([]*translation.Translation, error) {
	var list []models.TranslationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("language_code = ?", languageCode).
		Order("key ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	translations := make([]*translation.Translation, 0, len(list))
	for i := range list {
		tr, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}
	return translations, nil
}

// ListLanguages returns the distinct language codes present.
func (r *TranslationRepository) ListLanguages(ctx context.Context) ([]string, error) {
	var codes []string
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.TranslationModel{}).
		Distinct("language_code").
		Order("language_code ASC").
		Pluck("language_code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}

	return codes, nil
}
