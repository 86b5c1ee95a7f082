package api

import (
	"net/http"

	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// ListBlogsHandler handles GET /api/blogs
//
// @Summary      List blogs
// @Description  Newest first. The optional category query narrows to one category id.
// @Tags         Blogs
// @Produce      json
// @Param        category  query  string  false  "Category id"
// @Success      200  {object}  responses.Envelope
// @Router       /api/blogs [get]
func (h *Handlers) ListBlogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs := h.deps.Services.Blogs.List(r.Context(), r.URL.Query().Get("category"))
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"blogs": blogs})
	}
}

// FeaturedBlogsHandler handles GET /api/blogs/featured
func (h *Handlers) FeaturedBlogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs := h.deps.Services.Blogs.Featured(r.Context())
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"blogs": blogs})
	}
}

// GetBlogHandler handles GET /api/blogs/{id}
func (h *Handlers) GetBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, err := h.deps.Services.Blogs.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"blog": blog})
	}
}

// ListCategoriesHandler handles GET /api/blog-categories
func (h *Handlers) ListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := h.deps.Services.Blogs.Categories(r.Context())
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"categories": categories})
	}
}

// CreateBlogHandler handles POST /api/admin/blogs
func (h *Handlers) CreateBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.BlogRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		blog, err := h.deps.Services.Blogs.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"blog": blog})
	}
}

// UpdateBlogHandler handles PUT /api/admin/blogs/{id}
func (h *Handlers) UpdateBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch requests.BlogPatch
		if !h.decodeBody(w, r, &patch) {
			return
		}

		blog, err := h.deps.Services.Blogs.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"blog": blog})
	}
}

// DeleteBlogHandler handles DELETE /api/admin/blogs/{id}
func (h *Handlers) DeleteBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Services.Blogs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{})
	}
}

// CreateCategoryHandler handles POST /api/admin/blog-categories
func (h *Handlers) CreateCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CategoryRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		category, err := h.deps.Services.Blogs.CreateCategory(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"category": category})
	}
}

// DeleteCategoryHandler handles DELETE /api/admin/blog-categories/{id}
func (h *Handlers) DeleteCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Services.Blogs.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{})
	}
}
