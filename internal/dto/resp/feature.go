package resp

import (
	"featureboard/internal/grid"
	"featureboard/internal/model"
	v1 "featureboard/pkg/api/v1"
)

// FeatureDetail is the read-only projection shown by the view dialog.
type FeatureDetail = v1.Feature

// NewFeatureDetail resolves the labels of f. Unset values read as "".
func NewFeatureDetail(f *model.Feature) FeatureDetail {
	d := FeatureDetail{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.DescriptionText(),
		Status:         f.StatusName(),
		Team:           f.TeamName(),
		MoscowPriority: f.MoscowPriorityName(),
		FeatureType:    f.FeatureTypeName(),
		Dependencies:   []string{},
	}
	if v, ok := f.BusinessValue(); ok {
		d.BusinessValue = grid.ValueLabel(v)
	}
	for _, dep := range f.Dependencies {
		if name := dep.TeamName(); name != "" {
			d.Dependencies = append(d.Dependencies, name)
		}
	}
	return d
}

// TableResponse is one page of the feature table.
type TableResponse = v1.Table

type CreateFeatureResponse = v1.Created

type MessageResponse struct {
	Message string `json:"message"`
}
