package services

import (
	"context"
	"testing"

	"framework4future/portal/internal/models/dtos/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Fallback(t *testing.T) {
	svc := NewDashboardService(unconfiguredLive(), seededStore(), testMetrics())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.ActiveMembers)
	assert.Equal(t, int64(1), summary.PendingMembers)
	assert.Equal(t, int64(1), summary.PendingHours)
	assert.Equal(t, int64(3), summary.Events)
	assert.Equal(t, int64(4), summary.Blogs)
}

func TestDashboardService_Live(t *testing.T) {
	live := setupTestDB(t)
	fb := seededStore()
	members, _ := newTestMemberService(live, fb)
	events := NewEventService(live, fb, testMetrics())
	svc := NewDashboardService(live, fb, testMetrics())
	ctx := context.Background()

	require.True(t, members.Register(ctx, registerRequest("one@example.org")).Success)
	two := members.Register(ctx, registerRequest("two@example.org"))
	require.True(t, two.Success)
	require.True(t, members.ProcessPayment(ctx, two.Member.ID, "card", "").Success)
	_, err := events.Create(ctx, requests.EventRequest{Name: "Open House", Date: "2025-12-01"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.ActiveMembers)
	assert.Equal(t, int64(1), summary.PendingMembers)
	assert.Equal(t, int64(0), summary.PendingHours)
	assert.Equal(t, int64(1), summary.Events)
	assert.Equal(t, int64(0), summary.Blogs)
}

func TestDashboardService_LiveFailure(t *testing.T) {
	svc := NewDashboardService(brokenLive(t), seededStore(), testMetrics())

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
