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

// SupportLogoRepository is the GORM implementation of content.SupportLogoRepository.
type SupportLogoRepository struct {
	db     *gorm.DB
	mapper mappers.SupportLogoMapper
}

// NewSupportLogoRepository creates a new SupportLogoRepository.
func NewSupportLogoRepository(db *gorm.DB) *SupportLogoRepository {
	return &SupportLogoRepository{
		db:     db,
		mapper: mappers.NewSupportLogoMapper(),
	}
}

func (r *SupportLogoRepository) Create(ctx context.Context, logo *content.SupportLogo) error {
	model := r.mapper.ToModel(logo)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create support logo: %w", err)
	}

	return logo.SetID(model.ID)
}

func (r *SupportLogoRepository) Update(ctx context.Context, logo *content.SupportLogo) error {
	model := r.mapper.ToModel(logo)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SupportLogoModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update support logo: %w", result.Error)
	}

	return nil
}

func (r *SupportLogoRepository) GetByID(ctx context.Context, id uint) (*content.SupportLogo, error) {
	var model models.SupportLogoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find support logo: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupportLogoRepository) ListActive(ctx context.Context) ([]*content.SupportLogo, error) {
	var list []models.SupportLogoModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent(), db.OrderedByDisplay()).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list support logos: %w", err)
	}

	logos := make([]*content.SupportLogo, 0, len(list))
	for i := range list {
		logo, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		logos = append(logos, logo)
	}
	return logos, nil
}

func (r *SupportLogoRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.SupportLogo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.SupportLogoModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(db.ActiveContent()).
		Where("id IN ?", ids).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list support logos by ids: %w", err)
	}

	logos := make([]*content.SupportLogo, 0, len(list))
	for i := range list {
		logo, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		logos = append(logos, logo)
	}
	return logos, nil
}
