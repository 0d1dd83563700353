package model

type Status struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	ColorHex    *string `gorm:"size:16" json:"color_hex"`
}

func (Status) TableName() string { return "statuses" }

type Team struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

func (Team) TableName() string { return "teams" }

type MoscowPriority struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

func (MoscowPriority) TableName() string { return "moscow_priorities" }

type FeatureType struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	ColorHex    *string `gorm:"size:16" json:"color_hex"`
}

func (FeatureType) TableName() string { return "feature_types" }

type BusinessValue struct {
	Base
	Value int `gorm:"not null" json:"value"`
}

func (BusinessValue) TableName() string { return "business_values" }
