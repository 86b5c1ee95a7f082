package services

import (
	"context"
	"fmt"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/models/entities"
	gormModels "framework4future/portal/internal/models/gorm"

	"golang.org/x/sync/errgroup"
)

// DashboardService aggregates admin counts. Unlike the per-entity services it
// reports live store errors to the caller.
type DashboardService struct {
	storeDeps
	members *repositories.MemberRepository
	hours   *repositories.VolunteeringRepository
	events  *repositories.EventRepository
	blogs   *repositories.BlogRepository
}

func NewDashboardService(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) *DashboardService {
	return &DashboardService{
		storeDeps: newStoreDeps(live, fb, m),
		members:   repositories.NewMemberRepository(live),
		hours:     repositories.NewVolunteeringRepository(live),
		events:    repositories.NewEventRepository(live),
		blogs:     repositories.NewBlogRepository(live),
	}
}

func (s *DashboardService) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	if !s.useLive("dashboard", "summary") {
		return s.fallbackSummary(), nil
	}

	var summary entities.DashboardSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.ActiveMembers, err = s.members.CountByStatus(gctx, string(constants.MembershipActive))
		return err
	})
	g.Go(func() (err error) {
		summary.PendingMembers, err = s.members.CountByStatus(gctx, string(constants.MembershipPending))
		return err
	})
	g.Go(func() (err error) {
		summary.PendingHours, err = s.hours.CountByStatus(gctx, string(constants.HoursPending))
		return err
	})
	g.Go(func() (err error) {
		summary.Events, err = s.events.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Blogs, err = s.blogs.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.liveFailed("dashboard", "summary", err)
		return entities.DashboardSummary{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	s.liveOK("dashboard", "summary")
	return summary, nil
}

func (s *DashboardService) fallbackSummary() entities.DashboardSummary {
	fb := s.fallback
	return entities.DashboardSummary{
		ActiveMembers: int64(fb.Members.Count(func(m *gormModels.Member) bool {
			return m.MembershipStatus == constants.MembershipActive
		})),
		PendingMembers: int64(fb.Members.Count(func(m *gormModels.Member) bool {
			return m.MembershipStatus == constants.MembershipPending
		})),
		PendingHours: int64(fb.Hours.Count(func(h *gormModels.VolunteeringHours) bool {
			return h.Status == constants.HoursPending
		})),
		Events: int64(fb.Events.Len()),
		Blogs:  int64(fb.Blogs.Len()),
	}
}
