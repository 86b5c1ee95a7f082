package gorm

import (
	"time"

	"framework4future/portal/internal/constants"

	"gorm.io/gorm"
)

type Member struct {
	ID               string                     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FirstName        string                     `gorm:"column:first_name" json:"first_name"`
	LastName         string                     `gorm:"column:last_name" json:"last_name"`
	Name             string                     `gorm:"column:name" json:"name"`
	Email            string                     `gorm:"column:email;uniqueIndex" json:"email"`
	Phone            string                     `gorm:"column:phone" json:"phone"`
	Grade            string                     `gorm:"column:grade" json:"grade"`
	SchoolName       string                     `gorm:"column:school_name" json:"school_name"`
	PasswordHash     string                     `gorm:"column:password_hash" json:"-"`
	PaymentMethod    *string                    `gorm:"column:payment_method" json:"payment_method"`
	PaymentStatus    constants.PaymentStatus    `gorm:"column:payment_status" json:"payment_status"`
	TransactionID    *string                    `gorm:"column:transaction_id" json:"transaction_id"`
	MembershipStatus constants.MembershipStatus `gorm:"column:membership_status" json:"membership_status"`
	IsAdmin          bool                       `gorm:"column:is_admin" json:"is_admin"`
	CreatedAt        time.Time                  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// Active reports whether the member may sign in.
func (m *Member) Active() bool {
	return m.MembershipStatus == constants.MembershipActive
}
