package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the uuid primary key and timestamps shared by every table.
type Base struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&Status{},
		&Team{},
		&MoscowPriority{},
		&FeatureType{},
		&BusinessValue{},
		&Feature{},
		&FeatureAttributes{},
		&FeatureDependency{},
	}
}
