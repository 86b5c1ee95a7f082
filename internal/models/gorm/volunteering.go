package gorm

import (
	"time"

	"framework4future/portal/internal/constants"

	"gorm.io/gorm"
)

type VolunteeringHours struct {
	ID                  string                `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	MemberID            string                `gorm:"column:member_id;type:uuid;index" json:"member_id"`
	ActivityName        string                `gorm:"column:activity_name" json:"activity_name"`
	ActivityDescription string                `gorm:"column:activity_description" json:"activity_description"`
	HoursCompleted      float64               `gorm:"column:hours_completed" json:"hours_completed"`
	ActivityDate        string                `gorm:"column:activity_date" json:"activity_date"`
	OrganizationName    string                `gorm:"column:organization_name" json:"organization_name"`
	SupervisorName      string                `gorm:"column:supervisor_name" json:"supervisor_name"`
	SupervisorEmail     string                `gorm:"column:supervisor_email" json:"supervisor_email"`
	SupervisorPhone     string                `gorm:"column:supervisor_phone" json:"supervisor_phone"`
	Status              constants.HoursStatus `gorm:"column:status" json:"status"`
	AdminNotes          string                `gorm:"column:admin_notes" json:"admin_notes"`
	ReviewedBy          *string               `gorm:"column:reviewed_by;type:uuid" json:"reviewed_by"`
	ReviewedAt          *time.Time            `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt           time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (VolunteeringHours) TableName() string {
	return "volunteering_hours"
}

func (h *VolunteeringHours) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = NewID()
	}
	return nil
}
