package repositories

import (
	"context"
	"fmt"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"
)

// TeamRepository reads the public roster with raw SQL and manages it through gorm.
type TeamRepository struct {
	crud[gormModels.TeamMember]
	live *db.Live
}

func NewTeamRepository(live *db.Live) *TeamRepository {
	return &TeamRepository{
		crud: crud[gormModels.TeamMember]{
			read:  live.Public,
			write: live.Service,
			order: "display_order ASC, name ASC",
		},
		live: live,
	}
}

// ListActive returns active team members, optionally narrowed to one category.
func (r *TeamRepository) ListActive(ctx context.Context, category string) ([]gormModels.TeamMember, error) {
	raw, err := r.live.SQL()
	if err != nil {
		return nil, err
	}

	var out []gormModels.TeamMember
	if category == "" {
		err = raw.SelectContext(ctx, &out, constants.SelectActiveTeamMembers)
	} else {
		err = raw.SelectContext(ctx, &out, constants.SelectActiveTeamMembersByCategory, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	return out, nil
}

func (r *TeamRepository) All(ctx context.Context) ([]gormModels.TeamMember, error) {
	return r.list(ctx)
}

func (r *TeamRepository) Get(ctx context.Context, id string) (*gormModels.TeamMember, error) {
	return r.get(ctx, id)
}

func (r *TeamRepository) Create(ctx context.Context, member *gormModels.TeamMember) error {
	return r.create(ctx, member)
}

func (r *TeamRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.TeamMember, error) {
	return r.update(ctx, id, updates)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
