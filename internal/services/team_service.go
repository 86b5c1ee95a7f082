package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/models/dtos/requests"
	gormModels "framework4future/portal/internal/models/gorm"
)

const entityTeam = "team_members"

// TeamService swallows live store errors like the other content services.
type TeamService struct {
	storeDeps
	repo *repositories.TeamRepository
}

func NewTeamService(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) *TeamService {
	return &TeamService{
		storeDeps: newStoreDeps(live, fb, m),
		repo:      repositories.NewTeamRepository(live),
	}
}

// List returns active team members by display order, optionally for one category.
func (s *TeamService) List(ctx context.Context, category string) ([]gormModels.TeamMember, error) {
	if category != "" && !constants.TeamCategory(category).Valid() {
		return nil, fmt.Errorf("unknown team category %q: %w", category, ErrInvalidInput)
	}

	if s.useLive(entityTeam, "list") {
		team, err := s.repo.ListActive(ctx, category)
		if err == nil {
			s.liveOK(entityTeam, "list")
			return team, nil
		}
		s.liveFailed(entityTeam, "list", err)
	}

	team := s.fallback.Team.Filter(func(t *gormModels.TeamMember) bool {
		return t.IsActive && (category == "" || string(t.Category) == category)
	})
	sortTeam(team)
	return team, nil
}

// All returns every team member including inactive ones.
func (s *TeamService) All(ctx context.Context) []gormModels.TeamMember {
	if s.useLive(entityTeam, "all") {
		team, err := s.repo.All(ctx)
		if err == nil {
			s.liveOK(entityTeam, "all")
			return team
		}
		s.liveFailed(entityTeam, "all", err)
	}

	team := s.fallback.Team.All()
	sortTeam(team)
	return team
}

func (s *TeamService) Create(ctx context.Context, req requests.TeamMemberRequest) (gormModels.TeamMember, error) {
	if !constants.TeamCategory(req.Category).Valid() {
		return gormModels.TeamMember{}, fmt.Errorf("unknown team category %q: %w", req.Category, ErrInvalidInput)
	}

	member := gormModels.TeamMember{
		Name:         req.Name,
		Title:        req.Title,
		Category:     constants.TeamCategory(req.Category),
		Headshot:     req.Headshot,
		Bio:          req.Bio,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	if s.useLive(entityTeam, "create") {
		err := s.repo.Create(ctx, &member)
		if err == nil {
			s.liveOK(entityTeam, "create")
			return member, nil
		}
		s.liveFailed(entityTeam, "create", err)
	}

	if member.ID == "" {
		member.ID = gormModels.NewID()
	}
	member.CreatedAt = now()
	member.UpdatedAt = member.CreatedAt
	s.fallback.Team.Prepend(member)
	return member, nil
}

func (s *TeamService) Update(ctx context.Context, id string, patch requests.TeamMemberPatch) (gormModels.TeamMember, error) {
	if patch.Category != nil && !constants.TeamCategory(*patch.Category).Valid() {
		return gormModels.TeamMember{}, fmt.Errorf("unknown team category %q: %w", *patch.Category, ErrInvalidInput)
	}

	if s.useLive(entityTeam, "update") {
		member, err := s.repo.Update(ctx, id, teamUpdates(patch))
		switch {
		case err == nil:
			s.liveOK(entityTeam, "update")
			return *member, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.TeamMember{}, fmt.Errorf("team member %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityTeam, "update", err)
	}

	member, ok := s.fallback.Team.Update(id, func(t *gormModels.TeamMember) {
		applyTeamPatch(t, patch)
		t.UpdatedAt = now()
	})
	if !ok {
		return gormModels.TeamMember{}, fmt.Errorf("team member %s: %w", id, ErrNotFound)
	}
	return member, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if s.useLive(entityTeam, "delete") {
		err := s.repo.Delete(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityTeam, "delete")
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			return fmt.Errorf("team member %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityTeam, "delete", err)
	}

	if !s.fallback.Team.Remove(id) {
		return fmt.Errorf("team member %s: %w", id, ErrNotFound)
	}
	return nil
}

func sortTeam(team []gormModels.TeamMember) {
	sort.SliceStable(team, func(i, j int) bool {
		if team[i].DisplayOrder != team[j].DisplayOrder {
			return team[i].DisplayOrder < team[j].DisplayOrder
		}
		return team[i].Name < team[j].Name
	})
}

func teamUpdates(p requests.TeamMemberPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Headshot != nil {
		updates["headshot"] = *p.Headshot
	}
	if p.Bio != nil {
		updates["bio"] = *p.Bio
	}
	if p.DisplayOrder != nil {
		updates["display_order"] = *p.DisplayOrder
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}
	return updates
}

func applyTeamPatch(t *gormModels.TeamMember, p requests.TeamMemberPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = constants.TeamCategory(*p.Category)
	}
	if p.Headshot != nil {
		t.Headshot = *p.Headshot
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.DisplayOrder != nil {
		t.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
}
