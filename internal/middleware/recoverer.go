package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/logging"
)

// Recoverer turns a panicking handler into a 500 with the generic error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Error("Handler panicked",
					"request_id", auth.GetRequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				respondWithError(w, http.StatusInternalServerError, constants.MsgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
