package constants

import (
	"database/sql/driver"
	"fmt"
)

type (
	MembershipStatus string
	PaymentStatus    string
	PaymentMethod    string
	HoursStatus      string
	TeamCategory     string
)

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"

	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"

	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCash   PaymentMethod = "cash"
	PaymentCheck  PaymentMethod = "check"

	HoursPending  HoursStatus = "pending"
	HoursApproved HoursStatus = "approved"
	HoursRejected HoursStatus = "rejected"

	TeamYouthLeader     TeamCategory = "youth_leader"
	TeamExecutiveMember TeamCategory = "executive_member"
	TeamBoardDirector   TeamCategory = "board_director"
)

func (s MembershipStatus) String() string { return string(s) }
func (s PaymentStatus) String() string    { return string(s) }
func (m PaymentMethod) String() string    { return string(m) }
func (s HoursStatus) String() string      { return string(s) }
func (c TeamCategory) String() string     { return string(c) }

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipInactive:
		return true
	}
	return false
}

// Online reports whether the method settles immediately.
func (m PaymentMethod) Online() bool {
	return m == PaymentCard || m == PaymentPayPal
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentCash, PaymentCheck:
		return true
	}
	return false
}

// Reviewed reports whether s is a terminal review outcome.
func (s HoursStatus) Reviewed() bool {
	return s == HoursApproved || s == HoursRejected
}

func (c TeamCategory) Valid() bool {
	switch c {
	case TeamYouthLeader, TeamExecutiveMember, TeamBoardDirector:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

func scanString(src interface{}, name string) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s: cannot scan type %T", name, src)
	}
}

func (s *MembershipStatus) Scan(src interface{}) error {
	v, err := scanString(src, "MembershipStatus")
	*s = MembershipStatus(v)
	return err
}

func (s MembershipStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *PaymentStatus) Scan(src interface{}) error {
	v, err := scanString(src, "PaymentStatus")
	*s = PaymentStatus(v)
	return err
}

func (s PaymentStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *HoursStatus) Scan(src interface{}) error {
	v, err := scanString(src, "HoursStatus")
	*s = HoursStatus(v)
	return err
}

func (s HoursStatus) Value() (driver.Value, error) { return string(s), nil }

func (c *TeamCategory) Scan(src interface{}) error {
	v, err := scanString(src, "TeamCategory")
	*c = TeamCategory(v)
	return err
}

func (c TeamCategory) Value() (driver.Value, error) { return string(c), nil }
