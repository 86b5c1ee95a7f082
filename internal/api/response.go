package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/models/dtos/responses"
	"framework4future/portal/internal/services"

	"github.com/go-playground/validator/v10"
)

func respondWithSuccess(w http.ResponseWriter, statusCode int, payload responses.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(responses.Success(payload))
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(responses.ErrorResponse{Success: false, Error: message})
}

// respondWithResultError maps a service result message to its HTTP status.
func respondWithResultError(w http.ResponseWriter, message string) {
	respondWithError(w, statusForMessage(message), message)
}

func statusForMessage(message string) int {
	switch message {
	case constants.MsgDatabaseError, constants.MsgInternalError:
		return http.StatusInternalServerError
	case constants.MsgMemberNotFound, constants.MsgHoursNotFound:
		return http.StatusNotFound
	case constants.MsgInvalidCredentials, constants.MsgMembershipInactive:
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

// respondWithServiceError handles the two errors content services return.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, constants.MsgNotFound)
	case errors.Is(err, services.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, strings.TrimSuffix(err.Error(), ": "+services.ErrInvalidInput.Error()))
	default:
		logging.Error("Unexpected service error", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, constants.MsgInternalError)
	}
}

// decodeBody decodes the JSON body into dst and runs struct validation. It
// writes the 400 response itself and reports whether the handler may go on.
func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return constants.MsgInvalidBody
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", fe.Field())
	case "email":
		return fmt.Sprintf("Invalid email address: %s", fe.Field())
	}
	return fmt.Sprintf("Invalid value for field: %s", fe.Field())
}
