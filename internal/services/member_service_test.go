package services

import (
	"context"
	"strings"
	"testing"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(email string) requests.RegisterMemberRequest {
	return requests.RegisterMemberRequest{
		FirstName:  "Casey",
		LastName:   "Nguyen",
		Email:      email,
		Phone:      "555-0199",
		Grade:      "12",
		SchoolName: "Central High",
		Password:   "s3cret-pass",
	}
}

func newTestMemberService(live *db.Live, fb *fallback.Store) (*MemberService, *RegistrationFlowService) {
	flow := NewRegistrationFlowService(common.NewCacheService(300, 600))
	return NewMemberService(live, fb, flow, testMetrics()), flow
}

func TestMemberService_Register_Fallback(t *testing.T) {
	fb := seededStore()
	svc, flow := newTestMemberService(unconfiguredLive(), fb)

	res := svc.Register(context.Background(), registerRequest(" Casey@Example.org "))
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Member)

	m := res.Member
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "casey@example.org", m.Email)
	assert.Equal(t, "Casey Nguyen", m.Name)
	assert.Equal(t, constants.PaymentPending, m.PaymentStatus)
	assert.Equal(t, constants.MembershipPending, m.MembershipStatus)
	assert.NotEqual(t, "s3cret-pass", m.PasswordHash)
	assert.True(t, strings.HasPrefix(m.PasswordHash, "$2"))

	all := fb.Members.All()
	assert.Equal(t, m.ID, all[0].ID)

	progress, err := flow.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepPayment, progress.Step)
	assert.False(t, progress.Completed)
}

func TestMemberService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestMemberService(unconfiguredLive(), seededStore())

	res := svc.Register(context.Background(), registerRequest(strings.ToUpper(fallback.DemoMemberEmail)))

	assert.False(t, res.Success)
	assert.Nil(t, res.Member)
	assert.Equal(t, constants.MsgEmailTaken, res.Error)
}

func TestMemberService_ProcessPayment(t *testing.T) {
	tests := []struct {
		name           string
		memberID       string
		method         string
		transactionID  string
		wantErr        string
		wantPayment    constants.PaymentStatus
		wantMembership constants.MembershipStatus
		wantTxn        bool
	}{
		{"card completes", "3", "card", "", "", constants.PaymentCompleted, constants.MembershipActive, true},
		{"paypal keeps supplied id", "3", "PayPal", "PP-123", "", constants.PaymentCompleted, constants.MembershipActive, true},
		{"cash stays pending", "3", "cash", "", "", constants.PaymentPending, constants.MembershipPending, false},
		{"check stays pending", "3", "check", "chk-9", "", constants.PaymentPending, constants.MembershipPending, true},
		{"unknown method", "3", "bitcoin", "", constants.MsgInvalidPaymentMethod, "", "", false},
		{"cash on paid member", "2", "cash", "", constants.MsgPaymentCompleted, "", "", false},
		{"card on paid member", "2", "card", "", constants.MsgPaymentCompleted, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := seededStore()
			svc, flow := newTestMemberService(unconfiguredLive(), fb)

			res := svc.ProcessPayment(context.Background(), tt.memberID, tt.method, tt.transactionID)
			if tt.wantErr != "" {
				assert.False(t, res.Success)
				assert.Equal(t, tt.wantErr, res.Error)

				member, ok := fb.Members.Get(tt.memberID)
				require.True(t, ok)
				if member.MembershipStatus == constants.MembershipActive {
					assert.Equal(t, constants.PaymentCompleted, member.PaymentStatus)
				}
				_, err := flow.Get(tt.memberID)
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.True(t, res.Success, res.Error)

			assert.Equal(t, tt.wantPayment, res.Member.PaymentStatus)
			assert.Equal(t, tt.wantMembership, res.Member.MembershipStatus)
			assert.Equal(t, tt.wantTxn, res.Member.TransactionID != nil)
			if tt.transactionID != "" {
				assert.Equal(t, tt.transactionID, *res.Member.TransactionID)
			}

			progress, err := flow.Get(tt.memberID)
			require.NoError(t, err)
			assert.Equal(t, entities.StepConfirmation, progress.Step)
			assert.Equal(t, tt.wantPayment == constants.PaymentCompleted, progress.Completed)
		})
	}
}

func TestMemberService_ProcessPayment_UnknownMember(t *testing.T) {
	svc, _ := newTestMemberService(unconfiguredLive(), seededStore())

	res := svc.ProcessPayment(context.Background(), "nope", "card", "")

	assert.False(t, res.Success)
	assert.Equal(t, constants.MsgMemberNotFound, res.Error)
}

func TestMemberService_UpdateStatus(t *testing.T) {
	svc, _ := newTestMemberService(unconfiguredLive(), seededStore())
	ctx := context.Background()

	res := svc.UpdateStatus(ctx, "3", "active")
	require.True(t, res.Success)
	assert.Equal(t, constants.MembershipActive, res.Member.MembershipStatus)
	assert.Equal(t, constants.PaymentCompleted, res.Member.PaymentStatus)

	res = svc.UpdateStatus(ctx, "2", "inactive")
	require.True(t, res.Success)
	assert.Equal(t, constants.MembershipInactive, res.Member.MembershipStatus)

	res = svc.UpdateStatus(ctx, "2", "banned")
	assert.False(t, res.Success)
	assert.Equal(t, constants.MsgInvalidMemberStatus, res.Error)
}

func TestMemberService_Live_RegisterAndPay(t *testing.T) {
	live := setupTestDB(t)
	svc, _ := newTestMemberService(live, seededStore())
	ctx := context.Background()

	res := svc.Register(ctx, registerRequest("live@example.org"))
	require.True(t, res.Success, res.Error)
	id := res.Member.ID

	dup := svc.Register(ctx, registerRequest("LIVE@example.org"))
	assert.Equal(t, constants.MsgEmailTaken, dup.Error)

	paid := svc.ProcessPayment(ctx, id, "card", "")
	require.True(t, paid.Success, paid.Error)
	assert.Equal(t, constants.MembershipActive, paid.Member.MembershipStatus)
	require.NotNil(t, paid.Member.TransactionID)
	assert.True(t, strings.HasPrefix(*paid.Member.TransactionID, "txn_"))

	again := svc.ProcessPayment(ctx, id, "cash", "")
	assert.False(t, again.Success)
	assert.Equal(t, constants.MsgPaymentCompleted, again.Error)

	got := svc.Get(ctx, id)
	require.True(t, got.Success)
	assert.Equal(t, constants.PaymentCompleted, got.Member.PaymentStatus)
	assert.Equal(t, constants.MembershipActive, got.Member.MembershipStatus)

	unknown := svc.ProcessPayment(ctx, "00000000-0000-0000-0000-000000000000", "card", "")
	assert.Equal(t, constants.MsgMemberNotFound, unknown.Error)

	list := svc.List(ctx)
	require.True(t, list.Success)
	assert.Len(t, list.Members, 1)

	missing := svc.Get(ctx, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, constants.MsgMemberNotFound, missing.Error)
}

func TestMemberService_LiveFailure_ReturnsResultError(t *testing.T) {
	fb := seededStore()
	svc, _ := newTestMemberService(brokenLive(t), fb)
	ctx := context.Background()

	reg := svc.Register(ctx, registerRequest("down@example.org"))
	assert.False(t, reg.Success)
	assert.Nil(t, reg.Member)
	assert.Equal(t, constants.MsgDatabaseError, reg.Error)

	list := svc.List(ctx)
	assert.False(t, list.Success)
	assert.Equal(t, constants.MsgDatabaseError, list.Error)

	pay := svc.ProcessPayment(ctx, "3", "card", "")
	assert.Equal(t, constants.MsgDatabaseError, pay.Error)

	// result services never silently write to the fallback store
	assert.Equal(t, 3, fb.Members.Len())
}
