package gorm

import "github.com/google/uuid"

// NewID returns a fresh record id. Live and fallback stores share it so ids look
// the same whichever store created the record.
func NewID() string {
	return uuid.NewString()
}

// All lists every model for migrations.
func All() []interface{} {
	return []interface{}{
		&Member{},
		&Event{},
		&BlogCategory{},
		&Blog{},
		&VolunteeringHours{},
		&TeamMember{},
	}
}
