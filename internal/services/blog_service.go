package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/models/dtos/requests"
	gormModels "framework4future/portal/internal/models/gorm"

	"golang.org/x/sync/singleflight"
)

const (
	entityBlogs      = "blogs"
	entityCategories = "blog_categories"
)

// BlogService serves blogs and their categories. Like EventService it swallows
// live store errors. The category list is cached.
type BlogService struct {
	storeDeps
	blogs      *repositories.BlogRepository
	categories *repositories.CategoryRepository
	cache      common.CacheInterface
	group      singleflight.Group
}

func NewBlogService(
	live *db.Live,
	fb *fallback.Store,
	cache common.CacheInterface,
	m *metrics.MetricsRegistry,
) *BlogService {
	return &BlogService{
		storeDeps:  newStoreDeps(live, fb, m),
		blogs:      repositories.NewBlogRepository(live),
		categories: repositories.NewCategoryRepository(live),
		cache:      cache,
	}
}

// List returns blogs newest first. A non-empty categoryID narrows the result
// to blogs in that category.
func (s *BlogService) List(ctx context.Context, categoryID string) []gormModels.Blog {
	if s.useLive(entityBlogs, "list") {
		blogs, err := s.blogs.List(ctx, categoryID)
		if err == nil {
			s.liveOK(entityBlogs, "list")
			return blogs
		}
		s.liveFailed(entityBlogs, "list", err)
	}

	if categoryID == "" {
		return s.fallback.Blogs.All()
	}
	return s.fallback.Blogs.Filter(func(b *gormModels.Blog) bool {
		return b.InCategory(categoryID)
	})
}

func (s *BlogService) Featured(ctx context.Context) []gormModels.Blog {
	if s.useLive(entityBlogs, "featured") {
		blogs, err := s.blogs.Featured(ctx)
		if err == nil {
			s.liveOK(entityBlogs, "featured")
			return blogs
		}
		s.liveFailed(entityBlogs, "featured", err)
	}

	return s.fallback.Blogs.Filter(func(b *gormModels.Blog) bool { return b.Featured })
}

func (s *BlogService) Get(ctx context.Context, id string) (gormModels.Blog, error) {
	if s.useLive(entityBlogs, "get") {
		blog, err := s.blogs.Get(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityBlogs, "get")
			return *blog, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.Blog{}, fmt.Errorf("blog %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityBlogs, "get", err)
	}

	blog, ok := s.fallback.Blogs.Get(id)
	if !ok {
		return gormModels.Blog{}, fmt.Errorf("blog %s: %w", id, ErrNotFound)
	}
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, req requests.BlogRequest) (gormModels.Blog, error) {
	if req.Title == "" || req.Content == "" {
		return gormModels.Blog{}, fmt.Errorf("blog title and content are required: %w", ErrInvalidInput)
	}

	blog := gormModels.Blog{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Image:      req.Image,
		Date:       req.Date,
		Author:     req.Author,
		ReadTime:   req.ReadTime,
		CategoryID: categoryRef(req.CategoryID),
		Featured:   req.Featured,
	}
	if blog.Excerpt == "" {
		blog.Excerpt = excerptOf(blog.Content)
	}
	if blog.ReadTime == "" {
		blog.ReadTime = readTimeOf(blog.Content)
	}
	if blog.Date == "" {
		blog.Date = now().Format("2006-01-02")
	}

	if s.useLive(entityBlogs, "create") {
		err := s.blogs.Create(ctx, &blog)
		if err == nil {
			s.liveOK(entityBlogs, "create")
			return blog, nil
		}
		s.liveFailed(entityBlogs, "create", err)
	}

	if blog.ID == "" {
		blog.ID = gormModels.NewID()
	}
	blog.CreatedAt = now()
	blog.UpdatedAt = blog.CreatedAt
	s.fallback.Blogs.Prepend(blog)
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, id string, patch requests.BlogPatch) (gormModels.Blog, error) {
	if s.useLive(entityBlogs, "update") {
		blog, err := s.blogs.Update(ctx, id, blogUpdates(patch))
		switch {
		case err == nil:
			s.liveOK(entityBlogs, "update")
			return *blog, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.Blog{}, fmt.Errorf("blog %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityBlogs, "update", err)
	}

	blog, ok := s.fallback.Blogs.Update(id, func(b *gormModels.Blog) {
		applyBlogPatch(b, patch)
		b.UpdatedAt = now()
	})
	if !ok {
		return gormModels.Blog{}, fmt.Errorf("blog %s: %w", id, ErrNotFound)
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if s.useLive(entityBlogs, "delete") {
		err := s.blogs.Delete(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityBlogs, "delete")
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			return fmt.Errorf("blog %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityBlogs, "delete", err)
	}

	if !s.fallback.Blogs.Remove(id) {
		return fmt.Errorf("blog %s: %w", id, ErrNotFound)
	}
	return nil
}

// Categories returns every blog category ordered by name. Results are cached
// for CategoriesCacheTTL and concurrent misses share one load.
func (s *BlogService) Categories(ctx context.Context) []gormModels.BlogCategory {
	key := string(constants.CachePrefixCategories)

	if s.cache != nil {
		if val, found := s.cache.Get(key); found {
			var cached []gormModels.BlogCategory
			if err := common.DecodeCached(val, &cached); err == nil {
				s.metrics.RecordCache(key, true)
				return cached
			}
			logging.Warn("Discarding undecodable cache entry", "key", key)
		}
		s.metrics.RecordCache(key, false)
	}

	// The load is shared by every waiting caller, so it must not die with the
	// first caller's request.
	loadCtx := context.WithoutCancel(ctx)
	val, _, _ := s.group.Do(key, func() (interface{}, error) {
		categories, authoritative := s.loadCategories(loadCtx)
		if authoritative && s.cache != nil {
			s.cache.Set(key, categories, constants.CategoriesCacheTTL)
		}
		return categories, nil
	})
	return val.([]gormModels.BlogCategory)
}

// loadCategories reports false when a live failure forced the fallback list;
// such a result must not be cached.
func (s *BlogService) loadCategories(ctx context.Context) ([]gormModels.BlogCategory, bool) {
	authoritative := true
	if s.useLive(entityCategories, "list") {
		categories, err := s.categories.List(ctx)
		if err == nil {
			s.liveOK(entityCategories, "list")
			return categories, true
		}
		s.liveFailed(entityCategories, "list", err)
		authoritative = false
	}

	categories := s.fallback.Categories.All()
	sortCategories(categories)
	return categories, authoritative
}

func (s *BlogService) CreateCategory(ctx context.Context, req requests.CategoryRequest) (gormModels.BlogCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return gormModels.BlogCategory{}, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}

	category := gormModels.BlogCategory{Name: name, Slug: req.Slug}
	if category.Slug == "" {
		category.Slug = slugify(name)
	}
	defer s.invalidateCategories()

	if s.useLive(entityCategories, "create") {
		err := s.categories.Create(ctx, &category)
		if err == nil {
			s.liveOK(entityCategories, "create")
			return category, nil
		}
		s.liveFailed(entityCategories, "create", err)
	}

	if _, exists := s.fallback.Categories.Find(func(c *gormModels.BlogCategory) bool {
		return strings.EqualFold(c.Name, name)
	}); exists {
		return gormModels.BlogCategory{}, fmt.Errorf("category %q already exists: %w", name, ErrInvalidInput)
	}

	if category.ID == "" {
		category.ID = gormModels.NewID()
	}
	category.CreatedAt = now()
	s.fallback.Categories.Prepend(category)
	return category, nil
}

// DeleteCategory removes the category and clears it from every blog that used it.
func (s *BlogService) DeleteCategory(ctx context.Context, id string) error {
	defer s.invalidateCategories()

	if s.useLive(entityCategories, "delete") {
		err := s.categories.Delete(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityCategories, "delete")
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			return fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityCategories, "delete", err)
	}

	if !s.fallback.Categories.Remove(id) {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	s.fallback.Blogs.UpdateWhere(
		func(b *gormModels.Blog) bool { return b.InCategory(id) },
		func(b *gormModels.Blog) { b.CategoryID = nil },
	)
	return nil
}

// RefreshCategories drops the cached list and loads it again.
func (s *BlogService) RefreshCategories(ctx context.Context) []gormModels.BlogCategory {
	s.invalidateCategories()
	return s.Categories(ctx)
}

func (s *BlogService) invalidateCategories() {
	if s.cache != nil {
		s.cache.Delete(string(constants.CachePrefixCategories))
	}
}

// categoryRef maps an empty category id to no category.
func categoryRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return strPtr(*id)
}

func blogUpdates(p requests.BlogPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.Excerpt != nil {
		updates["excerpt"] = *p.Excerpt
	}
	if p.Image != nil {
		updates["image"] = *p.Image
	}
	if p.Date != nil {
		updates["date"] = *p.Date
	}
	if p.Author != nil {
		updates["author"] = *p.Author
	}
	if p.ReadTime != nil {
		updates["read_time"] = *p.ReadTime
	}
	if p.CategoryID != nil {
		updates["category_id"] = categoryRef(p.CategoryID)
	}
	if p.Featured != nil {
		updates["featured"] = *p.Featured
	}
	return updates
}

func applyBlogPatch(b *gormModels.Blog, p requests.BlogPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Excerpt != nil {
		b.Excerpt = *p.Excerpt
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ReadTime != nil {
		b.ReadTime = *p.ReadTime
	}
	if p.CategoryID != nil {
		b.CategoryID = categoryRef(p.CategoryID)
	}
	if p.Featured != nil {
		b.Featured = *p.Featured
	}
}
