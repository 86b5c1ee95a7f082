package repositories

import (
	"context"

	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"
)

type EventRepository struct {
	crud[gormModels.Event]
}

func NewEventRepository(live *db.Live) *EventRepository {
	return &EventRepository{crud[gormModels.Event]{
		read:  live.Public,
		write: live.Service,
		order: "created_at DESC",
	}}
}

func (r *EventRepository) List(ctx context.Context) ([]gormModels.Event, error) {
	return r.list(ctx)
}

func (r *EventRepository) Get(ctx context.Context, id string) (*gormModels.Event, error) {
	return r.get(ctx, id)
}

func (r *EventRepository) Create(ctx context.Context, event *gormModels.Event) error {
	return r.create(ctx, event)
}

func (r *EventRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.Event, error) {
	return r.update(ctx, id, updates)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}
