package services

import (
	"testing"

	"framework4future/portal/internal/config"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	gormModels "framework4future/portal/internal/models/gorm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
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

func testMetrics() *metrics.MetricsRegistry {
	return metrics.NewMetricsRegistry(prometheus.NewRegistry())
}

// unconfiguredLive fails the configuration probe, so every call hits the fallback store.
func unconfiguredLive() *db.Live {
	return db.NewLive(config.StoreConfig{}, nil, nil, nil)
}

// setupTestDB returns a configured live store backed by in-memory sqlite.
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

	require.NoError(t, gdb.AutoMigrate(gormModels.All()...))

	return db.NewLive(configuredStore(), gdb, gdb, nil)
}

// brokenLive passes the probe but every statement fails, which is what a down
// or misconfigured database looks like to the services.
func brokenLive(t *testing.T) *db.Live {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, DriverName: "postgres"}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db.NewLive(configuredStore(), gdb, gdb, nil)
}

func seededStore() *fallback.Store {
	return fallback.New()
}
