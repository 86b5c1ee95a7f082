package middleware

import (
	"encoding/json"
	"net/http"

	"framework4future/portal/internal/models/dtos/responses"
)

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(responses.ErrorResponse{Success: false, Error: message})
}
