package repositories

import (
	"context"
	"testing"
	"time"

	"framework4future/portal/internal/config"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func configuredStore() config.StoreConfig {
	return config.StoreConfig{
		URL:            "postgres://postgres@db.framework4future.test:5432/postgres",
		AnonKey:        "test-anon-key",
		ServiceRoleKey: "test-service-key",
	}
}

func setupTestDB(t *testing.T) *db.Live {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return db.NewLive(configuredStore(), gdb, gdb, nil)
}

func TestEventRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(setupTestDB(t))

	event := gormModels.Event{Name: "Robotics Night", Date: "2025-12-01"}
	require.NoError(t, repo.Create(ctx, &event))
	require.NotEmpty(t, event.ID)

	got, err := repo.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robotics Night", got.Name)

	updated, err := repo.Update(ctx, event.ID, map[string]interface{}{"name": "Robotics Night II"})
	require.NoError(t, err)
	assert.Equal(t, "Robotics Night II", updated.Name)
	assert.Equal(t, "2025-12-01", updated.Date)

	unchanged, err := repo.Update(ctx, event.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Robotics Night II", unchanged.Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, event.ID))
	_, err = repo.Get(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(setupTestDB(t))

	_, err := repo.Update(ctx, "missing", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)
}

func TestCategoryRepository_DeleteDetachesBlogs(t *testing.T) {
	ctx := context.Background()
	live := setupTestDB(t)
	categories := NewCategoryRepository(live)
	blogs := NewBlogRepository(live)

	category := gormModels.BlogCategory{ID: "c1", Name: "Programs", Slug: "programs"}
	require.NoError(t, categories.Create(ctx, &category))

	catID := category.ID
	blog := gormModels.Blog{Title: "Camp", Content: "Recap", Author: "Staff", CategoryID: &catID}
	require.NoError(t, blogs.Create(ctx, &blog))

	inCategory, err := blogs.List(ctx, catID)
	require.NoError(t, err)
	require.Len(t, inCategory, 1)

	require.NoError(t, categories.Delete(ctx, catID))

	got, err := blogs.Get(ctx, blog.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	assert.ErrorIs(t, categories.Delete(ctx, catID), ErrNotFound)
}

func TestMemberRepository_GetByEmailIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository(setupTestDB(t))

	member := gormModels.Member{
		Email:            "jordan@example.org",
		PaymentStatus:    constants.PaymentPending,
		MembershipStatus: constants.MembershipPending,
	}
	require.NoError(t, repo.Create(ctx, &member))

	got, err := repo.GetByEmail(ctx, "Jordan@Example.org")
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.org")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.CountByStatus(ctx, string(constants.MembershipPending))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestVolunteeringRepository_UpdateIfPendingOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewVolunteeringRepository(setupTestDB(t))

	hours := gormModels.VolunteeringHours{
		MemberID:       gormModels.NewID(),
		ActivityName:   "Food drive",
		HoursCompleted: 2,
		Status:         constants.HoursPending,
	}
	require.NoError(t, repo.Create(ctx, &hours))

	updated, err := repo.UpdateIfPending(ctx, hours.ID, map[string]interface{}{"status": constants.HoursApproved})
	require.NoError(t, err)
	assert.Equal(t, constants.HoursApproved, updated.Status)

	_, err = repo.UpdateIfPending(ctx, hours.ID, map[string]interface{}{"status": constants.HoursRejected})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.Get(ctx, hours.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.HoursApproved, got.Status)
}

func TestTeamRepository_ListActiveUsesRawSQL(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	live := db.NewLive(configuredStore(), nil, nil, sqlx.NewDb(mockDB, "postgres"))
	repo := NewTeamRepository(live)

	now := time.Now()
	cols := []string{"id", "name", "title", "category", "headshot", "bio", "display_order", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery("FROM team_members").
		WithArgs("board_director").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("4", "Dr. Linda Okafor", "Board Chair", "board_director", "", "", 1, true, now, now))

	team, err := repo.ListActive(context.Background(), "board_director")
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, constants.TeamBoardDirector, team[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_ListActiveWithoutRawHandle(t *testing.T) {
	repo := NewTeamRepository(db.NewLive(configuredStore(), nil, nil, nil))
	_, err := repo.ListActive(context.Background(), "")
	assert.ErrorIs(t, err, db.ErrNotConnected)
}

func TestTeamRepository_ServiceKeyOnly(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	cfg := config.StoreConfig{
		URL:            "postgres://postgres@db.framework4future.test:5432/postgres",
		ServiceRoleKey: "test-service-key",
	}
	require.False(t, cfg.PublicConfigured())

	rawDSN, err := cfg.RawDSN()
	require.NoError(t, err)
	assert.Contains(t, rawDSN, "test-service-key")

	live := db.NewLive(cfg, nil, nil, sqlx.NewDb(mockDB, "postgres"))
	require.True(t, live.Configured())

	mock.ExpectPing()
	require.NoError(t, live.Ping(context.Background()))

	mock.ExpectQuery("FROM team_members").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("7", "Sam Rivera"))

	team, err := NewTeamRepository(live).ListActive(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Sam Rivera", team[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
