package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"
	"framework4future/portal/internal/services"

	"github.com/go-chi/chi/v5"
)

// SubmitHoursHandler handles POST /api/volunteering/submit
//
// @Summary      Submit volunteering hours
// @Description  Records a pending submission. Members may only submit for themselves unless they are admins.
// @Tags         Volunteering
// @Accept       json
// @Produce      json
// @Param        Authorization  header  string                       true  "Bearer token"
// @Param        input          body    requests.SubmitHoursRequest  true  "Submission"
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /api/volunteering/submit [post]
func (h *Handlers) SubmitHoursHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SubmitHoursRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		hours, ok := parseHours(req.HoursCompleted.String())
		if !ok {
			respondWithError(w, http.StatusBadRequest, constants.MsgHoursNotPositive)
			return
		}

		claims := auth.GetUserClaims(r.Context())
		if !auth.CanAccessMember(claims, req.MemberID) {
			respondWithError(w, http.StatusUnauthorized, constants.MsgForbiddenMember)
			return
		}

		res := h.deps.Services.Volunteering.Submit(r.Context(), req.MemberID, services.HoursInput{
			ActivityName:        req.ActivityName,
			ActivityDescription: req.ActivityDescription,
			HoursCompleted:      hours,
			ActivityDate:        req.ActivityDate,
			OrganizationName:    req.OrganizationName,
			SupervisorName:      req.SupervisorName,
			SupervisorEmail:     req.SupervisorEmail,
			SupervisorPhone:     req.SupervisorPhone,
		})
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"hours": res.Hours})
	}
}

// parseHours accepts only finite positive numbers.
func parseHours(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// MemberHoursHandler handles GET /api/volunteering/member/{memberId}
func (h *Handlers) MemberHoursHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.deps.Services.Volunteering.ListForMember(r.Context(), chi.URLParam(r, "memberId"))
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"hours": res.Hours})
	}
}

// ListAllHoursHandler handles GET /api/volunteering/admin
func (h *Handlers) ListAllHoursHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.deps.Services.Volunteering.ListAll(r.Context())
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"hours": res.Hours})
	}
}

// ReviewHoursHandler handles PATCH /api/volunteering/admin
func (h *Handlers) ReviewHoursHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ReviewHoursRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		reviewerID := ""
		if claims := auth.GetUserClaims(r.Context()); claims != nil {
			reviewerID = claims.MemberID()
		}

		res := h.deps.Services.Volunteering.UpdateStatus(r.Context(), req.ID, req.Status, req.AdminNotes, reviewerID)
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"hours": res.Hours})
	}
}
