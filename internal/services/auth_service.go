package services

import (
	"context"
	"errors"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	gormModels "framework4future/portal/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// AuthResult never carries a member unless Success is true.
type AuthResult struct {
	Success bool               `json:"success"`
	Member  *gormModels.Member `json:"member,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type AuthService struct {
	storeDeps
	repo *repositories.MemberRepository
}

func NewAuthService(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) *AuthService {
	return &AuthService{
		storeDeps: newStoreDeps(live, fb, m),
		repo:      repositories.NewMemberRepository(live),
	}
}

// Authenticate checks the credentials and that the membership is active.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) AuthResult {
	email = normalizeEmail(email)

	member, found, err := s.lookup(ctx, email)
	if err != nil {
		s.metrics.RecordLogin("error")
		return AuthResult{Error: constants.MsgDatabaseError}
	}

	if !found || bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		s.metrics.RecordLogin("invalid")
		return AuthResult{Error: constants.MsgInvalidCredentials}
	}

	if !member.Active() {
		s.metrics.RecordLogin("inactive")
		return AuthResult{Error: constants.MsgMembershipInactive}
	}

	s.metrics.RecordLogin("success")
	return AuthResult{Success: true, Member: &member}
}

func (s *AuthService) lookup(ctx context.Context, email string) (gormModels.Member, bool, error) {
	if s.useLive(entityMembers, "authenticate") {
		member, err := s.repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			s.liveOK(entityMembers, "authenticate")
			return *member, true, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.Member{}, false, nil
		}
		s.liveFailed(entityMembers, "authenticate", err)
		return gormModels.Member{}, false, err
	}

	member, ok := s.fallback.Members.Find(func(m *gormModels.Member) bool {
		return normalizeEmail(m.Email) == email
	})
	return member, ok, nil
}
