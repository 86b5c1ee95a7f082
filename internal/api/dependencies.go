package api

import (
	"time"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/config"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/services"
	"framework4future/portal/internal/storage"
)

type Services struct {
	Events       *services.EventService
	Blogs        *services.BlogService
	Team         *services.TeamService
	Members      *services.MemberService
	Auth         *services.AuthService
	Volunteering *services.VolunteeringService
	Flow         *services.RegistrationFlowService
	Dashboard    *services.DashboardService
	Tokens       *common.TokenSigner
	Images       storage.ImageStore
	Cache        common.CacheInterface
}

type Dependencies struct {
	Config   config.Config
	Live     *db.Live
	Fallback *fallback.Store
	Services *Services
}

// InitDependencies builds every service over one live store, one fallback store
// and one cache so they all see the same data.
func InitDependencies(cfg config.Config, live *db.Live, fb *fallback.Store, cache common.CacheInterface, m *metrics.MetricsRegistry) *Dependencies {
	if fb == nil {
		fb = fallback.New()
	}

	if cfg.Auth.JWTSecret == "" {
		logging.Warn("JWT secret not set, tokens are signed with a per-process key and die on restart")
	}

	flow := services.NewRegistrationFlowService(cache)
	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour

	svcs := &Services{
		Events:       services.NewEventService(live, fb, m),
		Blogs:        services.NewBlogService(live, fb, cache, m),
		Team:         services.NewTeamService(live, fb, m),
		Members:      services.NewMemberService(live, fb, flow, m),
		Auth:         services.NewAuthService(live, fb, m),
		Volunteering: services.NewVolunteeringService(live, fb, m),
		Flow:         flow,
		Dashboard:    services.NewDashboardService(live, fb, m),
		Tokens:       common.NewTokenSigner([]byte(cfg.Auth.JWTSecret), ttl, cache),
		Images:       storage.New(cfg.Upload, cfg.Cloudinary),
		Cache:        cache,
	}

	return &Dependencies{
		Config:   cfg,
		Live:     live,
		Fallback: fb,
		Services: svcs,
	}
}
