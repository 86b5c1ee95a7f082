package auth

import "time"

// UserClaims is what the auth middleware places on the request context.
type UserClaims interface {
	MemberID() string
	Email() string
	IsAdmin() bool
	TokenID() string
	ExpiresAt() time.Time
	Source() string
}

// MemberClaims are decoded from a member bearer token.
type MemberClaims struct {
	MemberUUID   string
	EmailValue   string
	Admin        bool
	JTI          string
	ExpiresValue time.Time
}

func (c *MemberClaims) MemberID() string     { return c.MemberUUID }
func (c *MemberClaims) Email() string        { return c.EmailValue }
func (c *MemberClaims) IsAdmin() bool        { return c.Admin }
func (c *MemberClaims) TokenID() string      { return c.JTI }
func (c *MemberClaims) ExpiresAt() time.Time { return c.ExpiresValue }
func (c *MemberClaims) Source() string       { return "JWT" }

// CanAccessMember reports whether the caller may read or write records owned by memberID.
func CanAccessMember(c UserClaims, memberID string) bool {
	if c == nil {
		return false
	}
	return c.IsAdmin() || c.MemberID() == memberID
}
