package services

import (
	"context"
	"testing"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/fallback"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_DemoAdmin(t *testing.T) {
	svc := NewAuthService(unconfiguredLive(), seededStore(), testMetrics())

	res := svc.Authenticate(context.Background(), fallback.DemoAdminEmail, fallback.DemoAdminPassword)

	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Member)
	assert.True(t, res.Member.IsAdmin)
	assert.Equal(t, constants.MembershipActive, res.Member.MembershipStatus)
}

func TestAuthService_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"wrong password", fallback.DemoAdminEmail, "admin124", constants.MsgInvalidCredentials},
		{"unknown email", "nobody@example.org", "admin123", constants.MsgInvalidCredentials},
		{"pending member", fallback.DemoPendingEmail, fallback.DemoPendingPasswd, constants.MsgMembershipInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(unconfiguredLive(), seededStore(), testMetrics())

			res := svc.Authenticate(context.Background(), tt.email, tt.password)

			assert.False(t, res.Success)
			assert.Nil(t, res.Member)
			assert.Equal(t, tt.wantErr, res.Error)
		})
	}
}

func TestAuthService_EmailIsCaseInsensitive(t *testing.T) {
	svc := NewAuthService(unconfiguredLive(), seededStore(), testMetrics())

	res := svc.Authenticate(context.Background(), "  MEMBER@framework4future.org", fallback.DemoMemberPassword)

	assert.True(t, res.Success)
}

func TestAuthService_Live_InactiveUntilPaid(t *testing.T) {
	live := setupTestDB(t)
	fb := seededStore()
	members, _ := newTestMemberService(live, fb)
	svc := NewAuthService(live, fb, testMetrics())
	ctx := context.Background()

	reg := members.Register(ctx, registerRequest("student@example.org"))
	require.True(t, reg.Success, reg.Error)

	res := svc.Authenticate(ctx, "student@example.org", "s3cret-pass")
	assert.Equal(t, constants.MsgMembershipInactive, res.Error)

	require.True(t, members.ProcessPayment(ctx, reg.Member.ID, "card", "").Success)

	res = svc.Authenticate(ctx, "student@example.org", "s3cret-pass")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, reg.Member.ID, res.Member.ID)

	// demo accounts only exist in the fallback store
	demo := svc.Authenticate(ctx, fallback.DemoAdminEmail, fallback.DemoAdminPassword)
	assert.Equal(t, constants.MsgInvalidCredentials, demo.Error)
}

func TestAuthService_LiveFailure(t *testing.T) {
	m := testMetrics()
	svc := NewAuthService(brokenLive(t), seededStore(), m)

	res := svc.Authenticate(context.Background(), fallback.DemoAdminEmail, fallback.DemoAdminPassword)

	assert.False(t, res.Success)
	assert.Nil(t, res.Member)
	assert.Equal(t, constants.MsgDatabaseError, res.Error)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoginsTotal.WithLabelValues("error")))
}
