package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id or key matches no row.
var ErrNotFound = errors.New("record not found")

type handleFunc func(ctx context.Context) (*gorm.DB, error)

// crud holds the gorm plumbing every entity repository shares. Reads and writes
// can go to different handles (public vs service role).
type crud[T any] struct {
	read  handleFunc
	write handleFunc
	order string
}

func (r crud[T]) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	var out []T
	if err := tx.Scopes(scopes...).Order(r.order).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list: %w", err)
	}
	return out, nil
}

func (r crud[T]) get(ctx context.Context, id string) (*T, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	return first[T](tx.Where("id = ?", id))
}

func (r crud[T]) count(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := tx.Model(new(T)).Scopes(scopes...).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

func (r crud[T]) create(ctx context.Context, record *T) error {
	tx, err := r.write(ctx)
	if err != nil {
		return err
	}
	if err := tx.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create: %w", err)
	}
	return nil
}

// update applies the column map to the row with id and returns the fresh row.
func (r crud[T]) update(ctx context.Context, id string, updates map[string]interface{}) (*T, error) {
	tx, err := r.write(ctx)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		res := tx.Model(new(T)).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return first[T](tx.Where("id = ?", id))
}

func (r crud[T]) delete(ctx context.Context, id string) error {
	tx, err := r.write(ctx)
	if err != nil {
		return err
	}

	res := tx.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("failed to delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func first[T any](tx *gorm.DB) (*T, error) {
	var out T
	if err := tx.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	return &out, nil
}
