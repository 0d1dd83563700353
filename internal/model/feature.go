package model

// Feature is a backlog item. Attributes and Dependencies are only populated
// when loaded through the joined select.
type Feature struct {
	Base
	Name         string              `gorm:"not null" json:"name"`
	Description  *string             `gorm:"type:text" json:"description"`
	Attributes   *FeatureAttributes  `gorm:"foreignKey:FeatureID" json:"feature_attributes"`
	Dependencies []FeatureDependency `gorm:"foreignKey:FeatureID" json:"feature_dependencies"`
}

func (Feature) TableName() string { return "features" }

// FeatureAttributes is the one-to-one classification record of a Feature.
// Every reference is optional.
type FeatureAttributes struct {
	Base
	FeatureID        *string `gorm:"size:36;uniqueIndex" json:"feature_id"`
	StatusID         *string `gorm:"size:36" json:"status_id"`
	TeamID           *string `gorm:"size:36" json:"team_id"`
	MoscowPriorityID *string `gorm:"size:36" json:"moscow_priority_id"`
	FeatureTypeID    *string `gorm:"size:36" json:"feature_type_id"`
	BusinessValueID  *string `gorm:"size:36" json:"business_value_id"`

	Status         *Status         `gorm:"foreignKey:StatusID" json:"statuses"`
	Team           *Team           `gorm:"foreignKey:TeamID" json:"teams"`
	MoscowPriority *MoscowPriority `gorm:"foreignKey:MoscowPriorityID" json:"moscow_priorities"`
	FeatureType    *FeatureType    `gorm:"foreignKey:FeatureTypeID" json:"feature_types"`
	BusinessValue  *BusinessValue  `gorm:"foreignKey:BusinessValueID" json:"business_values"`
}

func (FeatureAttributes) TableName() string { return "feature_attributes" }

// FeatureDependency links a Feature to a team it depends on.
type FeatureDependency struct {
	Base
	FeatureID       *string `gorm:"size:36;index" json:"feature_id"`
	DependentTeamID *string `gorm:"size:36" json:"dependent_team_id"`
	DependentTeam   *Team   `gorm:"foreignKey:DependentTeamID" json:"teams"`
}

func (FeatureDependency) TableName() string { return "feature_dependencies" }

// TeamName returns the dependent team's name, or "" when the reference is null.
func (d FeatureDependency) TeamName() string {
	if d.DependentTeam == nil {
		return ""
	}
	return d.DependentTeam.Name
}

// HasAttributes reports whether an attributes row exists for the feature.
func (f *Feature) HasAttributes() bool {
	return f.Attributes != nil && f.Attributes.ID != ""
}

func (f *Feature) DescriptionText() string {
	if f.Description == nil {
		return ""
	}
	return *f.Description
}

func (f *Feature) StatusID() *string {
	if f.Attributes == nil {
		return nil
	}
	return f.Attributes.StatusID
}

func (f *Feature) TeamID() *string {
	if f.Attributes == nil {
		return nil
	}
	return f.Attributes.TeamID
}

func (f *Feature) MoscowPriorityID() *string {
	if f.Attributes == nil {
		return nil
	}
	return f.Attributes.MoscowPriorityID
}

func (f *Feature) FeatureTypeID() *string {
	if f.Attributes == nil {
		return nil
	}
	return f.Attributes.FeatureTypeID
}

func (f *Feature) BusinessValueID() *string {
	if f.Attributes == nil {
		return nil
	}
	return f.Attributes.BusinessValueID
}

func (f *Feature) StatusName() string {
	if f.Attributes == nil || f.Attributes.Status == nil {
		return ""
	}
	return f.Attributes.Status.Name
}

func (f *Feature) StatusColor() string {
	if f.Attributes == nil || f.Attributes.Status == nil || f.Attributes.Status.ColorHex == nil {
		return ""
	}
	return *f.Attributes.Status.ColorHex
}

func (f *Feature) TeamName() string {
	if f.Attributes == nil || f.Attributes.Team == nil {
		return ""
	}
	return f.Attributes.Team.Name
}

func (f *Feature) MoscowPriorityName() string {
	if f.Attributes == nil || f.Attributes.MoscowPriority == nil {
		return ""
	}
	return f.Attributes.MoscowPriority.Name
}

func (f *Feature) FeatureTypeName() string {
	if f.Attributes == nil || f.Attributes.FeatureType == nil {
		return ""
	}
	return f.Attributes.FeatureType.Name
}

func (f *Feature) FeatureTypeColor() string {
	if f.Attributes == nil || f.Attributes.FeatureType == nil || f.Attributes.FeatureType.ColorHex == nil {
		return ""
	}
	return *f.Attributes.FeatureType.ColorHex
}

// BusinessValue returns the linked business value and whether one is linked.
func (f *Feature) BusinessValue() (int, bool) {
	if f.Attributes == nil || f.Attributes.BusinessValue == nil {
		return 0, false
	}
	return f.Attributes.BusinessValue.Value, true
}
