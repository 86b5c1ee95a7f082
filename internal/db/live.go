package db

import (
	"context"
	"errors"

	"framework4future/portal/internal/config"
	"framework4future/portal/internal/logging"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// ErrNotConnected is returned when the store is configured but no handle could
// be opened for it.
var ErrNotConnected = errors.New("live store not connected")

// Live bundles the live store handles with the configuration the probe checks.
type Live struct {
	cfg     config.StoreConfig
	public  *gorm.DB
	service *gorm.DB
	raw     *sqlx.DB
}

func NewLive(cfg config.StoreConfig, public, service *gorm.DB, raw *sqlx.DB) *Live {
	return &Live{cfg: cfg, public: public, service: service, raw: raw}
}

// Connect opens whatever handles the configuration allows. Connection failures
// are logged and leave the handle empty; callers then fall back per operation.
func Connect(cfg config.StoreConfig) *Live {
	live := &Live{cfg: cfg}

	if cfg.PublicConfigured() {
		dsn, err := cfg.PublicDSN()
		if err == nil {
			live.public, err = OpenORM(dsn)
		}
		if err != nil {
			logging.Error("Failed to open public store handle", "error", err.Error())
		}
	}

	if cfg.ServiceConfigured() {
		dsn, err := cfg.ServiceDSN()
		if err == nil {
			live.service, err = OpenORM(dsn)
		}
		if err != nil {
			logging.Error("Failed to open service store handle", "error", err.Error())
		}
	}

	if dsn, err := cfg.RawDSN(); err == nil {
		live.raw, err = OpenSQL(dsn)
		if err != nil {
			logging.Error("Failed to open raw store handle", "error", err.Error())
		}
	}

	if cfg.AutoMigrate {
		if handle, err := live.Service(context.Background()); err == nil {
			if err := Migrate(handle); err != nil {
				logging.Error("Auto migration failed", "error", err.Error())
			} else {
				logging.Info("Live store schema migrated")
			}
		}
	}

	return live
}

// Configured runs the configuration probe. Every data-access call goes through it.
func (l *Live) Configured() bool {
	if l == nil {
		return false
	}
	return l.cfg.PublicConfigured() || l.cfg.ServiceConfigured()
}

// Public returns the handle used for public content.
func (l *Live) Public(ctx context.Context) (*gorm.DB, error) {
	switch {
	case l.public != nil:
		return l.public.WithContext(ctx), nil
	case l.service != nil:
		return l.service.WithContext(ctx), nil
	}
	return nil, ErrNotConnected
}

// Service returns the service-role handle, or the public one when no service
// key was supplied.
func (l *Live) Service(ctx context.Context) (*gorm.DB, error) {
	switch {
	case l.service != nil:
		return l.service.WithContext(ctx), nil
	case l.public != nil:
		return l.public.WithContext(ctx), nil
	}
	return nil, ErrNotConnected
}

// SQL returns the raw sqlx handle.
func (l *Live) SQL() (*sqlx.DB, error) {
	if l.raw == nil {
		return nil, ErrNotConnected
	}
	return l.raw, nil
}

// Ping checks the raw handle for health reporting.
func (l *Live) Ping(ctx context.Context) error {
	if !l.Configured() {
		return errors.New("live store not configured")
	}
	raw, err := l.SQL()
	if err != nil {
		return err
	}
	return raw.PingContext(ctx)
}

func (l *Live) Close() error {
	var errs []error
	for _, g := range []*gorm.DB{l.public, l.service} {
		if g == nil {
			continue
		}
		if sqlDB, err := g.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	if l.raw != nil {
		errs = append(errs, l.raw.Close())
	}
	return errors.Join(errs...)
}
