package routes

import (
	"framework4future/portal/internal/api"
	"framework4future/portal/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the JSON API. Public content is open, member
// routes need a bearer token and admin routes need a token with is_admin.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {
	requireToken := middleware.AuthMiddleware(deps.Services.Tokens)
	limiter := middleware.NewRateLimiter(1, 5)

	r.Route("/api", func(a chi.Router) {
		// Public content
		a.Get("/events", handlers.ListEventsHandler())
		a.Get("/events/{id}", handlers.GetEventHandler())
		a.Get("/blogs", handlers.ListBlogsHandler())
		a.Get("/blogs/featured", handlers.FeaturedBlogsHandler())
		a.Get("/blogs/{id}", handlers.GetBlogHandler())
		a.Get("/blog-categories", handlers.ListCategoriesHandler())
		a.Get("/team", handlers.ListTeamHandler())

		// Sign in and sign up
		a.Group(func(limited chi.Router) {
			limited.Use(limiter.Middleware)
			limited.Post("/auth/login", handlers.LoginHandler())
			limited.Post("/members/register", handlers.RegisterMemberHandler())
			limited.Post("/members/payment", handlers.ProcessPaymentHandler())
		})
		a.Get("/members/{memberId}/registration", handlers.RegistrationProgressHandler())

		// Signed-in members
		a.Group(func(member chi.Router) {
			member.Use(requireToken)

			member.Post("/auth/logout", handlers.LogoutHandler())
			member.Get("/auth/me", handlers.MeHandler())
			member.With(limiter.Middleware).Post("/volunteering/submit", handlers.SubmitHoursHandler())
			member.With(middleware.IsSelfOrAdminMiddleware("memberId")).
				Get("/volunteering/member/{memberId}", handlers.MemberHoursHandler())

			// Admin-only group
			member.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/volunteering/admin", handlers.ListAllHoursHandler())
				admin.Patch("/volunteering/admin", handlers.ReviewHoursHandler())
				admin.Post("/upload-image", handlers.UploadImageHandler())

				admin.Route("/admin", func(ad chi.Router) {
					ad.Get("/dashboard", handlers.DashboardHandler())

					ad.Get("/members", handlers.ListMembersHandler())
					ad.Patch("/members/{id}/status", handlers.UpdateMemberStatusHandler())

					ad.Post("/events", handlers.CreateEventHandler())
					ad.Put("/events/{id}", handlers.UpdateEventHandler())
					ad.Delete("/events/{id}", handlers.DeleteEventHandler())

					ad.Post("/blogs", handlers.CreateBlogHandler())
					ad.Put("/blogs/{id}", handlers.UpdateBlogHandler())
					ad.Delete("/blogs/{id}", handlers.DeleteBlogHandler())

					ad.Post("/blog-categories", handlers.CreateCategoryHandler())
					ad.Delete("/blog-categories/{id}", handlers.DeleteCategoryHandler())

					ad.Get("/team", handlers.ListAllTeamHandler())
					ad.Post("/team", handlers.CreateTeamMemberHandler())
					ad.Put("/team/{id}", handlers.UpdateTeamMemberHandler())
					ad.Delete("/team/{id}", handlers.DeleteTeamMemberHandler())
				})
			})
		})
	})
}
