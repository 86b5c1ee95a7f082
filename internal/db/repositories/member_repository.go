package repositories

import (
	"context"
	"strings"

	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"

	"gorm.io/gorm"
)

// MemberRepository always uses the service-role handle: member rows carry
// credentials and payment data.
type MemberRepository struct {
	crud[gormModels.Member]
}

func NewMemberRepository(live *db.Live) *MemberRepository {
	return &MemberRepository{crud[gormModels.Member]{
		read:  live.Service,
		write: live.Service,
		order: "created_at DESC",
	}}
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*gormModels.Member, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	return first[gormModels.Member](tx.Where("LOWER(email) = ?", strings.ToLower(email)))
}

func (r *MemberRepository) Get(ctx context.Context, id string) (*gormModels.Member, error) {
	return r.get(ctx, id)
}

func (r *MemberRepository) List(ctx context.Context) ([]gormModels.Member, error) {
	return r.list(ctx)
}

func (r *MemberRepository) Create(ctx context.Context, member *gormModels.Member) error {
	return r.create(ctx, member)
}

func (r *MemberRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.Member, error) {
	return r.update(ctx, id, updates)
}

func (r *MemberRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("membership_status = ?", status)
	})
}

// UpdateUnpaid applies updates only while the member's payment is not completed
// and reports ErrNotFound when no such row matched.
func (r *MemberRepository) UpdateUnpaid(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.Member, error) {
	tx, err := r.write(ctx)
	if err != nil {
		return nil, err
	}

	res := tx.Model(&gormModels.Member{}).
		Where("id = ? AND payment_status <> ?", id, "completed").
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return first[gormModels.Member](tx.Where("id = ?", id))
}
