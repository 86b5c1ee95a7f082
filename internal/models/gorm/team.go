package gorm

import (
	"time"

	"framework4future/portal/internal/constants"

	"gorm.io/gorm"
)

// TeamMember is read by the public site through raw SQL as well, hence the db tags.
type TeamMember struct {
	ID           string                 `gorm:"column:id;primaryKey;type:uuid" db:"id" json:"id"`
	Name         string                 `gorm:"column:name" db:"name" json:"name"`
	Title        string                 `gorm:"column:title" db:"title" json:"title"`
	Category     constants.TeamCategory `gorm:"column:category" db:"category" json:"category"`
	Headshot     string                 `gorm:"column:headshot" db:"headshot" json:"headshot"`
	Bio          string                 `gorm:"column:bio" db:"bio" json:"bio"`
	DisplayOrder int                    `gorm:"column:display_order" db:"display_order" json:"display_order"`
	IsActive     bool                   `gorm:"column:is_active" db:"is_active" json:"is_active"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime" db:"created_at" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime" db:"updated_at" json:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (t *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}
