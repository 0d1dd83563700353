package repository

import (
	"context"

	"featureboard/internal/model"

	"gorm.io/gorm"
)

// AttributeValues is the set of references written on every attributes save.
// A nil reference clears the column.
type AttributeValues struct {
	StatusID         *string
	TeamID           *string
	MoscowPriorityID *string
	FeatureTypeID    *string
	BusinessValueID  *string
}

type AttributesInterface interface {
	UpdateByFeature(ctx context.Context, featureID string, values AttributeValues) error
	Insert(ctx context.Context, featureID string, values AttributeValues) error
	DeleteByFeature(ctx context.Context, featureID string) error
}

type AttributesRepository struct {
	db *gorm.DB
}

func NewAttributesRepository(db *gorm.DB) *AttributesRepository {
	return &AttributesRepository{db: db}
}

func (r *AttributesRepository) UpdateByFeature(ctx context.Context, featureID string, values AttributeValues) error {
	return r.db.WithContext(ctx).Model(&model.FeatureAttributes{}).
		Where("feature_id = ?", featureID).
		Updates(map[string]any{
			"status_id":          values.StatusID,
			"team_id":            values.TeamID,
			"moscow_priority_id": values.MoscowPriorityID,
			"feature_type_id":    values.FeatureTypeID,
			"business_value_id":  values.BusinessValueID,
		}).Error
}

func (r *AttributesRepository) Insert(ctx context.Context, featureID string, values AttributeValues) error {
	fid := featureID
	attrs := &model.FeatureAttributes{
		FeatureID:        &fid,
		StatusID:         values.StatusID,
		TeamID:           values.TeamID,
		MoscowPriorityID: values.MoscowPriorityID,
		FeatureTypeID:    values.FeatureTypeID,
		BusinessValueID:  values.BusinessValueID,
	}
	return r.db.WithContext(ctx).
		Omit("Status", "Team", "MoscowPriority", "FeatureType", "BusinessValue").
		Create(attrs).Error
}

func (r *AttributesRepository) DeleteByFeature(ctx context.Context, featureID string) error {
	return r.db.WithContext(ctx).Where("feature_id = ?", featureID).Delete(&model.FeatureAttributes{}).Error
}
