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

// FAQRepository is the GORM implementation of content.FAQRepository.
type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

// NewFAQRepository creates a new FAQRepository.
func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{
		db:     db,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Create(ctx context.Context, faq *content.FAQ) error {
	model := r.mapper.ToModel(faq)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return faq.SetID(model.ID)
}

func (r *FAQRepository) Update(ctx context.Context, faq *content.FAQ) error {
	model := r.mapper.ToModel(faq)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FAQModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}

	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*content.FAQ, error) {
	var model models.FAQModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find faq: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]*content.FAQ, error) {
	var list []models.FAQModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent(), db.OrderedByDisplay()).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	faqs := make([]*content.FAQ, 0, len(list))
	for i := range list {
		faq, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, nil
}

func (r *FAQRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.FAQ, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.FAQModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent()).
		Where("id IN ?", ids).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs by ids: %w", err)
	}

	faqs := make([]*content.FAQ, 0, len(list))
	for i := range list {
		faq, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, nil
}
