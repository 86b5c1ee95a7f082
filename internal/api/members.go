package api

import (
	"net/http"

	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// RegisterMemberHandler handles POST /api/members/register
//
// @Summary      Register a member
// @Description  Creates a pending membership. Payment or admin activation is required before sign in.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Param        input  body  requests.RegisterMemberRequest  true  "Member details"
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/members/register [post]
func (h *Handlers) RegisterMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RegisterMemberRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		res := h.deps.Services.Members.Register(r.Context(), req)
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"member": res.Member})
	}
}

// ProcessPaymentHandler handles POST /api/members/payment
func (h *Handlers) ProcessPaymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.PaymentRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		res := h.deps.Services.Members.ProcessPayment(r.Context(), req.MemberID, req.PaymentMethod, req.TransactionID)
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"member": res.Member})
	}
}

// RegistrationProgressHandler handles GET /api/members/{memberId}/registration
func (h *Handlers) RegistrationProgressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := h.deps.Services.Flow.Get(chi.URLParam(r, "memberId"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"progress": progress})
	}
}

// ListMembersHandler handles GET /api/admin/members
func (h *Handlers) ListMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.deps.Services.Members.List(r.Context())
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"members": res.Members})
	}
}

// UpdateMemberStatusHandler handles PATCH /api/admin/members/{id}/status
func (h *Handlers) UpdateMemberStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.MemberStatusRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		res := h.deps.Services.Members.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"member": res.Member})
	}
}
