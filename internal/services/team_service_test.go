package services

import (
	"context"
	"testing"
	"time"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/models/dtos/requests"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Fallback_ListActiveOrdered(t *testing.T) {
	svc := NewTeamService(unconfiguredLive(), seededStore(), testMetrics())

	team, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, team, 4)
	for _, m := range team {
		assert.True(t, m.IsActive)
	}
	for i := 1; i < len(team); i++ {
		assert.LessOrEqual(t, team[i-1].DisplayOrder, team[i].DisplayOrder)
	}
}

func TestTeamService_Fallback_ListByCategory(t *testing.T) {
	svc := NewTeamService(unconfiguredLive(), seededStore(), testMetrics())

	leaders, err := svc.List(context.Background(), string(constants.TeamYouthLeader))
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	assert.Equal(t, "Avery Chen", leaders[0].Name)

	_, err = svc.List(context.Background(), "volunteer")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_Fallback_CRUD(t *testing.T) {
	svc := NewTeamService(unconfiguredLive(), seededStore(), testMetrics())
	ctx := context.Background()

	created, err := svc.Create(ctx, requests.TeamMemberRequest{
		Name:         "Riley Park",
		Title:        "Outreach Lead",
		Category:     string(constants.TeamExecutiveMember),
		DisplayOrder: 2,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	inactive := false
	_, err = svc.Update(ctx, created.ID, requests.TeamMemberPatch{IsActive: &inactive})
	require.NoError(t, err)

	execs, err := svc.List(ctx, string(constants.TeamExecutiveMember))
	require.NoError(t, err)
	for _, m := range execs {
		assert.NotEqual(t, created.ID, m.ID)
	}
	assert.Len(t, svc.All(ctx), 6)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Len(t, svc.All(ctx), 5)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)

	_, err = svc.Create(ctx, requests.TeamMemberRequest{Name: "X", Title: "Y", Category: "mascot"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_Live_ListActiveUsesRawSQL(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "title", "category", "headshot", "bio", "display_order", "is_active", "created_at", "updated_at",
	}).AddRow("t-1", "Ana Ruiz", "President", "youth_leader", "", "", 1, true, now, now)

	mock.ExpectQuery("FROM team_members").
		WithArgs("youth_leader").
		WillReturnRows(rows)

	live := db.NewLive(configuredStore(), nil, nil, sqlx.NewDb(mockDB, "postgres"))
	svc := NewTeamService(live, seededStore(), testMetrics())

	team, err := svc.List(context.Background(), "youth_leader")
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Ana Ruiz", team[0].Name)
	assert.Equal(t, constants.TeamYouthLeader, team[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_LiveFailure_ServesFallback(t *testing.T) {
	svc := NewTeamService(brokenLive(t), seededStore(), testMetrics())

	team, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, team, 4)
	assert.Len(t, svc.All(context.Background()), 5)
}
