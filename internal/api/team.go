package api

import (
	"net/http"

	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// ListTeamHandler handles GET /api/team
//
// @Summary      List active team members
// @Tags         Team
// @Produce      json
// @Param        category  query  string  false  "youth_leader, executive_member or board_director"
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/team [get]
func (h *Handlers) ListTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := h.deps.Services.Team.List(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"team": team})
	}
}

// ListAllTeamHandler handles GET /api/admin/team, including inactive members.
func (h *Handlers) ListAllTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := h.deps.Services.Team.All(r.Context())
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"team": team})
	}
}

// CreateTeamMemberHandler handles POST /api/admin/team
func (h *Handlers) CreateTeamMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TeamMemberRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		member, err := h.deps.Services.Team.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"team_member": member})
	}
}

// UpdateTeamMemberHandler handles PUT /api/admin/team/{id}
func (h *Handlers) UpdateTeamMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch requests.TeamMemberPatch
		if !h.decodeBody(w, r, &patch) {
			return
		}

		member, err := h.deps.Services.Team.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"team_member": member})
	}
}

// DeleteTeamMemberHandler handles DELETE /api/admin/team/{id}
func (h *Handlers) DeleteTeamMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Services.Team.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{})
	}
}
