package repository

import (
	"context"
	"errors"

	"featureboard/internal/model"

	"gorm.io/gorm"
)

// FeatureInterface is the record store boundary for the features table and its joined projection.
type FeatureInterface interface {
	ListJoined(ctx context.Context) ([]model.Feature, error)
	GetJoined(ctx context.Context, id string) (*model.Feature, error)
	Create(ctx context.Context, feature *model.Feature) error
	UpdateDetails(ctx context.Context, id, name string, description *string) error
	Delete(ctx context.Context, id string) error
	PingContext(ctx context.Context) error
}

// FeatureRepository implements FeatureInterface on gorm
type FeatureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

// joined selects a feature with its attributes, every attribute lookup and
// the dependent team of each dependency.
func (r *FeatureRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Attributes").
		Preload("Attributes.Status").
		Preload("Attributes.Team").
		Preload("Attributes.MoscowPriority").
		Preload("Attributes.FeatureType").
		Preload("Attributes.BusinessValue").
		Preload("Dependencies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Dependencies.DependentTeam")
}

func (r *FeatureRepository) ListJoined(ctx context.Context) ([]model.Feature, error) {
	var features []model.Feature
	if err := r.joined(ctx).Order("created_at ASC, id ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// GetJoined returns nil, nil when the feature does not exist.
func (r *FeatureRepository) GetJoined(ctx context.Context, id string) (*model.Feature, error) {
	var feature model.Feature
	if err := r.joined(ctx).Where("id = ?", id).First(&feature).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feature, nil
}

func (r *FeatureRepository) Create(ctx context.Context, feature *model.Feature) error {
	return r.db.WithContext(ctx).Omit("Attributes", "Dependencies").Create(feature).Error
}

func (r *FeatureRepository) UpdateDetails(ctx context.Context, id, name string, description *string) error {
	return r.db.WithContext(ctx).Model(&model.Feature{}).Where("id = ?", id).Updates(map[string]any{
		"name":        name,
		"description": description,
	}).Error
}

func (r *FeatureRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Feature{}).Error
}

func (r *FeatureRepository) PingContext(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
