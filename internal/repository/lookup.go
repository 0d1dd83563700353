package repository

import (
	"context"

	"featureboard/internal/model"

	"gorm.io/gorm"
)

// LookupInterface loads the reference tables that feed dropdowns and faceted filters.
type LookupInterface interface {
	Statuses(ctx context.Context) ([]model.Status, error)
	MoscowPriorities(ctx context.Context) ([]model.MoscowPriority, error)
	Teams(ctx context.Context) ([]model.Team, error)
	FeatureTypes(ctx context.Context) ([]model.FeatureType, error)
	BusinessValues(ctx context.Context) ([]model.BusinessValue, error)
}

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) Statuses(ctx context.Context) ([]model.Status, error) {
	var rows []model.Status
	err := r.db.WithContext(ctx).Select("id", "name").Order("name").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) MoscowPriorities(ctx context.Context) ([]model.MoscowPriority, error) {
	var rows []model.MoscowPriority
	err := r.db.WithContext(ctx).Select("id", "name").Order("name").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) Teams(ctx context.Context) ([]model.Team, error) {
	var rows []model.Team
	err := r.db.WithContext(ctx).Select("id", "name").Order("name").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) FeatureTypes(ctx context.Context) ([]model.FeatureType, error) {
	var rows []model.FeatureType
	err := r.db.WithContext(ctx).Select("id", "name").Order("name").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) BusinessValues(ctx context.Context) ([]model.BusinessValue, error) {
	var rows []model.BusinessValue
	err := r.db.WithContext(ctx).Select("id", "value").Order("value").Find(&rows).Error
	return rows, err
}
