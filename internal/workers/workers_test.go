package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/config"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredStore() config.StoreConfig {
	return config.StoreConfig{
		URL:            "postgres://postgres@db.framework4future.test:5432/postgres",
		AnonKey:        "test-anon-key",
		ServiceRoleKey: "test-service-key",
	}
}

func TestStoreMonitor_Check(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	live := db.NewLive(configuredStore(), nil, nil, sqlx.NewDb(mockDB, "postgres"))
	monitor := NewStoreMonitor(live, m)

	mock.ExpectPing()
	assert.True(t, monitor.Check(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LiveStoreUp))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.False(t, monitor.Check(context.Background()))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.LiveStoreUp))

	mock.ExpectPing()
	assert.True(t, monitor.Check(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreMonitor_ConfiguredWithoutHandle(t *testing.T) {
	monitor := NewStoreMonitor(db.NewLive(configuredStore(), nil, nil, nil), nil)
	assert.False(t, monitor.Check(context.Background()))
}

func TestStoreMonitor_StartReturnsWhenUnconfigured(t *testing.T) {
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	monitor := NewStoreMonitor(db.NewLive(config.StoreConfig{}, nil, nil, nil), m)

	done := make(chan struct{})
	go func() {
		monitor.Start(context.Background(), time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor kept running without a configured store")
	}
	assert.Equal(t, float64(0), testutil.ToFloat64(m.LiveStoreUp))
}

func TestCategoryWarmer_Warm(t *testing.T) {
	cache := common.NewCacheService(60, 60)
	fb := fallback.New()
	blogs := services.NewBlogService(db.NewLive(config.StoreConfig{}, nil, nil, nil), fb, cache, nil)

	warmer := NewCategoryWarmer(blogs)
	assert.Equal(t, 3, warmer.Warm(context.Background()))

	_, found := cache.Get(string(constants.CachePrefixCategories))
	assert.True(t, found)
}

func TestCategoryWarmer_StopsOnCancel(t *testing.T) {
	blogs := services.NewBlogService(db.NewLive(config.StoreConfig{}, nil, nil, nil), fallback.New(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewCategoryWarmer(blogs).Start(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}
