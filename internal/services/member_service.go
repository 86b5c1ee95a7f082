package services

import (
	"context"
	"errors"
	"strings"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/entities"
	gormModels "framework4future/portal/internal/models/gorm"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const entityMembers = "members"

// MemberResult is returned by every single-member operation. Live store errors
// never escape as Go errors; they come back as Success false with a generic message.
type MemberResult struct {
	Success bool               `json:"success"`
	Member  *gormModels.Member `json:"member,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type MembersResult struct {
	Success bool                `json:"success"`
	Members []gormModels.Member `json:"members,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func memberOK(m gormModels.Member) MemberResult {
	return MemberResult{Success: true, Member: &m}
}

func memberFailed(msg string) MemberResult {
	return MemberResult{Error: msg}
}

type MemberService struct {
	storeDeps
	repo *repositories.MemberRepository
	flow *RegistrationFlowService
}

func NewMemberService(
	live *db.Live,
	fb *fallback.Store,
	flow *RegistrationFlowService,
	m *metrics.MetricsRegistry,
) *MemberService {
	return &MemberService{
		storeDeps: newStoreDeps(live, fb, m),
		repo:      repositories.NewMemberRepository(live),
		flow:      flow,
	}
}

// Register creates a pending member with a hashed password. The member cannot
// sign in until payment completes or an admin activates them.
func (s *MemberService) Register(ctx context.Context, req requests.RegisterMemberRequest) MemberResult {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logging.Error("Failed to hash password", "error", err.Error())
		return memberFailed(constants.MsgInternalError)
	}

	member := gormModels.Member{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            normalizeEmail(req.Email),
		Phone:            req.Phone,
		Grade:            req.Grade,
		SchoolName:       req.SchoolName,
		PasswordHash:     string(hash),
		PaymentStatus:    constants.PaymentPending,
		MembershipStatus: constants.MembershipPending,
	}
	member.Name = strings.TrimSpace(member.FirstName + " " + member.LastName)

	if s.useLive(entityMembers, "register") {
		_, err := s.repo.GetByEmail(ctx, member.Email)
		switch {
		case err == nil:
			return memberFailed(constants.MsgEmailTaken)
		case !errors.Is(err, repositories.ErrNotFound):
			s.liveFailed(entityMembers, "register", err)
			return memberFailed(constants.MsgDatabaseError)
		}

		if err := s.repo.Create(ctx, &member); err != nil {
			s.liveFailed(entityMembers, "register", err)
			return memberFailed(constants.MsgDatabaseError)
		}
		s.liveOK(entityMembers, "register")
	} else {
		if _, taken := s.fallback.Members.Find(func(m *gormModels.Member) bool {
			return normalizeEmail(m.Email) == member.Email
		}); taken {
			return memberFailed(constants.MsgEmailTaken)
		}

		member.ID = gormModels.NewID()
		member.CreatedAt = now()
		member.UpdatedAt = member.CreatedAt
		s.fallback.Members.Prepend(member)
	}

	s.metrics.RecordRegistration()
	s.flow.Record(member.ID, entities.StepPayment, false)
	logging.Info("Member registered", "member_id", member.ID)
	return memberOK(member)
}

// ProcessPayment records the member's payment. Card and PayPal payments settle
// immediately and activate the membership; cash and check stay pending until an
// admin confirms them. A member whose payment already completed cannot pay again.
func (s *MemberService) ProcessPayment(ctx context.Context, memberID, method, transactionID string) MemberResult {
	pm := constants.PaymentMethod(strings.ToLower(strings.TrimSpace(method)))
	if !pm.Valid() {
		return memberFailed(constants.MsgInvalidPaymentMethod)
	}

	status := constants.PaymentPending
	if pm.Online() {
		status = constants.PaymentCompleted
		if transactionID == "" {
			transactionID = "txn_" + uuid.NewString()
		}
	}

	updates := map[string]interface{}{
		"payment_method": string(pm),
		"payment_status": status,
		"transaction_id": optional(transactionID),
	}
	if status == constants.PaymentCompleted {
		updates["membership_status"] = constants.MembershipActive
	}

	var res MemberResult
	if s.useLive(entityMembers, "payment") {
		res = s.livePayment(ctx, memberID, updates)
	} else {
		res = s.fallbackPayment(memberID, func(m *gormModels.Member) {
			m.PaymentMethod = strPtr(string(pm))
			m.PaymentStatus = status
			m.TransactionID = optional(transactionID)
			if status == constants.PaymentCompleted {
				m.MembershipStatus = constants.MembershipActive
			}
			m.UpdatedAt = now()
		})
	}

	if res.Success {
		s.flow.Record(memberID, entities.StepConfirmation, status == constants.PaymentCompleted)
	}
	return res
}

func (s *MemberService) livePayment(ctx context.Context, memberID string, updates map[string]interface{}) MemberResult {
	member, err := s.repo.UpdateUnpaid(ctx, memberID, updates)
	if err == nil {
		s.liveOK(entityMembers, "payment")
		return memberOK(*member)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		s.liveFailed(entityMembers, "payment", err)
		return memberFailed(constants.MsgDatabaseError)
	}

	// nothing unpaid matched: either the member is missing or already paid
	_, err = s.repo.Get(ctx, memberID)
	switch {
	case err == nil:
		return memberFailed(constants.MsgPaymentCompleted)
	case errors.Is(err, repositories.ErrNotFound):
		return memberFailed(constants.MsgMemberNotFound)
	}
	s.liveFailed(entityMembers, "payment", err)
	return memberFailed(constants.MsgDatabaseError)
}

func (s *MemberService) fallbackPayment(memberID string, apply func(*gormModels.Member)) MemberResult {
	n := s.fallback.Members.UpdateWhere(func(m *gormModels.Member) bool {
		return m.ID == memberID && m.PaymentStatus != constants.PaymentCompleted
	}, apply)

	member, ok := s.fallback.Members.Get(memberID)
	switch {
	case !ok:
		return memberFailed(constants.MsgMemberNotFound)
	case n == 0:
		return memberFailed(constants.MsgPaymentCompleted)
	}
	return memberOK(member)
}

func (s *MemberService) Get(ctx context.Context, id string) MemberResult {
	if s.useLive(entityMembers, "get") {
		member, err := s.repo.Get(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityMembers, "get")
			return memberOK(*member)
		case errors.Is(err, repositories.ErrNotFound):
			return memberFailed(constants.MsgMemberNotFound)
		}
		s.liveFailed(entityMembers, "get", err)
		return memberFailed(constants.MsgDatabaseError)
	}

	member, ok := s.fallback.Members.Get(id)
	if !ok {
		return memberFailed(constants.MsgMemberNotFound)
	}
	return memberOK(member)
}

// List returns every member, newest first.
func (s *MemberService) List(ctx context.Context) MembersResult {
	if s.useLive(entityMembers, "list") {
		members, err := s.repo.List(ctx)
		if err != nil {
			s.liveFailed(entityMembers, "list", err)
			return MembersResult{Error: constants.MsgDatabaseError}
		}
		s.liveOK(entityMembers, "list")
		return MembersResult{Success: true, Members: members}
	}
	return MembersResult{Success: true, Members: s.fallback.Members.All()}
}

// UpdateStatus sets the membership status. Activating a member also marks
// their payment completed.
func (s *MemberService) UpdateStatus(ctx context.Context, id, status string) MemberResult {
	ms := constants.MembershipStatus(status)
	if !ms.Valid() {
		return memberFailed(constants.MsgInvalidMemberStatus)
	}

	updates := map[string]interface{}{"membership_status": ms}
	if ms == constants.MembershipActive {
		updates["payment_status"] = constants.PaymentCompleted
	}

	return s.update(ctx, "update_status", id, updates, func(m *gormModels.Member) {
		m.MembershipStatus = ms
		if ms == constants.MembershipActive {
			m.PaymentStatus = constants.PaymentCompleted
		}
	})
}

func (s *MemberService) update(
	ctx context.Context,
	op, id string,
	updates map[string]interface{},
	apply func(*gormModels.Member),
) MemberResult {
	if s.useLive(entityMembers, op) {
		member, err := s.repo.Update(ctx, id, updates)
		switch {
		case err == nil:
			s.liveOK(entityMembers, op)
			return memberOK(*member)
		case errors.Is(err, repositories.ErrNotFound):
			return memberFailed(constants.MsgMemberNotFound)
		}
		s.liveFailed(entityMembers, op, err)
		return memberFailed(constants.MsgDatabaseError)
	}

	member, ok := s.fallback.Members.Update(id, func(m *gormModels.Member) {
		apply(m)
		m.UpdatedAt = now()
	})
	if !ok {
		return memberFailed(constants.MsgMemberNotFound)
	}
	return memberOK(member)
}
