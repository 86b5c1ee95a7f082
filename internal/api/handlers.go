package api

import (
	"net/http"
	"reflect"
	"strings"

	"framework4future/portal/internal/constants"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	deps     *Dependencies
	validate *validator.Validate
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	v := validator.New()
	// Report JSON field names in validation messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &Handlers{
		deps:     deps,
		validate: v,
	}
}

// NotFoundHandler answers unmatched routes with the error envelope.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, constants.MsgNotFound)
	}
}

// MethodNotAllowedHandler answers known routes called with the wrong verb.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, constants.MsgMethodNotAllowed)
	}
}
