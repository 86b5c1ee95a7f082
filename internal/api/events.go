package api

import (
	"net/http"

	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// ListEventsHandler handles GET /api/events
//
// @Summary      List events
// @Tags         Events
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/events [get]
func (h *Handlers) ListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := h.deps.Services.Events.List(r.Context())
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"events": events})
	}
}

// GetEventHandler handles GET /api/events/{id}
func (h *Handlers) GetEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := h.deps.Services.Events.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"event": event})
	}
}

// CreateEventHandler handles POST /api/admin/events
func (h *Handlers) CreateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.EventRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		event, err := h.deps.Services.Events.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"event": event})
	}
}

// UpdateEventHandler handles PUT /api/admin/events/{id}
func (h *Handlers) UpdateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch requests.EventPatch
		if !h.decodeBody(w, r, &patch) {
			return
		}

		event, err := h.deps.Services.Events.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"event": event})
	}
}

// DeleteEventHandler handles DELETE /api/admin/events/{id}
func (h *Handlers) DeleteEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Services.Events.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{})
	}
}
