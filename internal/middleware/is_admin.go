package middleware

import (
	"net/http"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"
)

// IsAdminMiddleware must run after AuthMiddleware.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.IsAdmin() {
				respondWithError(w, http.StatusUnauthorized, constants.MsgAdminRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
