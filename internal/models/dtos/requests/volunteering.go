package requests

import "encoding/json"

// SubmitHoursRequest keeps hours_completed as a json.Number so both numbers and
// numeric strings decode; the handler parses and range-checks it.
type SubmitHoursRequest struct {
	MemberID            string      `json:"memberId" validate:"required"`
	ActivityName        string      `json:"activity_name" validate:"required"`
	ActivityDescription string      `json:"activity_description"`
	HoursCompleted      json.Number `json:"hours_completed" validate:"required"`
	ActivityDate        string      `json:"activity_date" validate:"required"`
	OrganizationName    string      `json:"organization_name" validate:"required"`
	SupervisorName      string      `json:"supervisor_name"`
	SupervisorEmail     string      `json:"supervisor_email" validate:"omitempty,email"`
	SupervisorPhone     string      `json:"supervisor_phone"`
}

type ReviewHoursRequest struct {
	ID         string `json:"id" validate:"required"`
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes"`
}
