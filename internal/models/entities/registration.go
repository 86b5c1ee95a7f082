package entities

import "time"

type RegistrationStep string

const (
	StepRegister     RegistrationStep = "register"
	StepPayment      RegistrationStep = "payment"
	StepConfirmation RegistrationStep = "confirmation"
)

// Next returns the step that follows s. Confirmation is terminal.
func (s RegistrationStep) Next() RegistrationStep {
	switch s {
	case StepRegister:
		return StepPayment
	case StepPayment:
		return StepConfirmation
	}
	return StepConfirmation
}

// RegistrationProgress tracks where a member is in the sign-up wizard.
type RegistrationProgress struct {
	MemberID  string           `json:"member_id"`
	Step      RegistrationStep `json:"step"`
	Completed bool             `json:"completed"`
	UpdatedAt time.Time        `json:"updated_at"`
}
