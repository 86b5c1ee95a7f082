package middleware

import (
	"net/http"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"

	"github.com/go-chi/chi/v5"
)

// IsSelfOrAdminMiddleware lets a request through when the member id in the URL
// parameter param belongs to the caller, or the caller is an admin.
func IsSelfOrAdminMiddleware(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if !auth.CanAccessMember(claims, chi.URLParam(r, param)) {
				respondWithError(w, http.StatusUnauthorized, constants.MsgForbiddenMember)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
