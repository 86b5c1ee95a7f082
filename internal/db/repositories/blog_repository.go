package repositories

import (
	"context"
	"fmt"

	"framework4future/portal/internal/db"
	gormModels "framework4future/portal/internal/models/gorm"

	"gorm.io/gorm"
)

type BlogRepository struct {
	crud[gormModels.Blog]
}

func NewBlogRepository(live *db.Live) *BlogRepository {
	return &BlogRepository{crud[gormModels.Blog]{
		read:  live.Public,
		write: live.Service,
		order: "created_at DESC",
	}}
}

// List returns every blog, or only those in categoryID when it is non-empty.
func (r *BlogRepository) List(ctx context.Context, categoryID string) ([]gormModels.Blog, error) {
	if categoryID == "" {
		return r.list(ctx)
	}
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("category_id = ?", categoryID)
	})
}

func (r *BlogRepository) Featured(ctx context.Context) ([]gormModels.Blog, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("featured = ?", true)
	})
}

func (r *BlogRepository) Get(ctx context.Context, id string) (*gormModels.Blog, error) {
	return r.get(ctx, id)
}

func (r *BlogRepository) Create(ctx context.Context, blog *gormModels.Blog) error {
	return r.create(ctx, blog)
}

func (r *BlogRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*gormModels.Blog, error) {
	return r.update(ctx, id, updates)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}

type CategoryRepository struct {
	crud[gormModels.BlogCategory]
}

func NewCategoryRepository(live *db.Live) *CategoryRepository {
	return &CategoryRepository{crud[gormModels.BlogCategory]{
		read:  live.Public,
		write: live.Service,
		order: "name ASC",
	}}
}

func (r *CategoryRepository) List(ctx context.Context) ([]gormModels.BlogCategory, error) {
	return r.list(ctx)
}

func (r *CategoryRepository) Create(ctx context.Context, category *gormModels.BlogCategory) error {
	return r.create(ctx, category)
}

// Delete removes the category and detaches every blog that referenced it.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.write(ctx)
	if err != nil {
		return err
	}

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&gormModels.Blog{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach blogs: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&gormModels.BlogCategory{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
