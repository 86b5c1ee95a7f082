package repositories

import (
	"context"

	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"

	"gorm.io/gorm"
)

type VolunteeringRepository struct {
	crud[gormModels.VolunteeringHours]
}

func NewVolunteeringRepository(live *db.Live) *VolunteeringRepository {
	return &VolunteeringRepository{crud[gormModels.VolunteeringHours]{
		read:  live.Service,
		write: live.Service,
		order: "created_at DESC",
	}}
}

func (r *VolunteeringRepository) Create(ctx context.Context, hours *gormModels.VolunteeringHours) error {
	return r.create(ctx, hours)
}

func (r *VolunteeringRepository) Get(ctx context.Context, id string) (*gormModels.VolunteeringHours, error) {
	return r.get(ctx, id)
}

func (r *VolunteeringRepository) ListForMember(ctx context.Context, memberID string) ([]gormModels.VolunteeringHours, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("member_id = ?", memberID)
	})
}

// ListAll returns every submission with its member preloaded for the review queue.
func (r *VolunteeringRepository) ListAll(ctx context.Context) ([]gormModels.VolunteeringHours, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Member")
	})
}

// UpdateIfPending applies updates only while the row is still pending and
// reports ErrNotFound when no pending row matched.
func (r *VolunteeringRepository) UpdateIfPending(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.VolunteeringHours, error) {
	tx, err := r.write(ctx)
	if err != nil {
		return nil, err
	}

	res := tx.Model(&gormModels.VolunteeringHours{}).
		Where("id = ? AND status = ?", id, "pending").
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return first[gormModels.VolunteeringHours](tx.Where("id = ?", id))
}

func (r *VolunteeringRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
}
