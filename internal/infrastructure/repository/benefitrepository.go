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

// BenefitRepository is the GORM implementation of content.BenefitRepository.
type BenefitRepository struct {
	db     *gorm.DB
	mapper mappers.BenefitMapper
}

// NewBenefitRepository creates a new BenefitRepository.
func NewBenefitRepository(db *gorm.DB) *BenefitRepository {
	return &BenefitRepository{
		db:     db,
		mapper: mappers.NewBenefitMapper(),
	}
}

func (r *BenefitRepository) Create(ctx context.Context, benefit *content.Benefit) error {
	model := r.mapper.ToModel(benefit)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create benefit: %w", err)
	}

	return benefit.SetID(model.ID)
}

func (r *BenefitRepository) Update(ctx context.Context, benefit *content.Benefit) error {
	model := r.mapper.ToModel(benefit)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BenefitModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update benefit: %w", result.Error)
	}

	return nil
}

func (r *BenefitRepository) GetByID(ctx context.Context, id uint) (*content.Benefit, error) {
	var model models.BenefitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find benefit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BenefitRepository) ListActive(ctx context.Context) ([]*content.Benefit, error) {
	var list []models.BenefitModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent(), db.OrderedByDisplay()).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	benefits := make([]*content.Benefit, 0, len(list))
	for i := range list {
		benefit, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		benefits = append(benefits, benefit)
	}
	return benefits, nil
}

func (r *BenefitRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.Benefit, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.BenefitModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent()).
		Where("id IN ?", ids).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits by ids: %w", err)
	}

	benefits := make([]*content.Benefit, 0, len(list))
	for i := range list {
		benefit, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		benefits = append(benefits, benefit)
	}
	return benefits, nil
}
