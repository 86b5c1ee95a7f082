package middleware

import (
	"net/http"
	"strings"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/common"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/logging"
)

// AuthMiddleware requires a valid member bearer token and places its claims on
// the request context.
func AuthMiddleware(signer *common.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}

			claims, err := signer.Validate(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
			if err != nil {
				logging.Debug("Rejected bearer token", "error", err.Error())
				respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
