package api

import (
	"net/http"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/models/dtos/requests"
	"framework4future/portal/internal/models/dtos/responses"
)

// LoginHandler handles POST /api/auth/login
//
// @Summary      Sign in
// @Description  Checks the credentials of an active member and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input  body  requests.LoginRequest  true  "Credentials"
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handlers) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		res := h.deps.Services.Auth.Authenticate(r.Context(), req.Email, req.Password)
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}

		token, expiresAt, err := h.deps.Services.Tokens.Issue(res.Member.ID, res.Member.Email, res.Member.IsAdmin)
		if err != nil {
			logging.Error("Failed to issue token", "member_id", res.Member.ID, "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, constants.MsgInternalError)
			return
		}

		respondWithSuccess(w, http.StatusOK, responses.Envelope{
			"member":     res.Member,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

// LogoutHandler handles POST /api/auth/logout
func (h *Handlers) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}

		h.deps.Services.Tokens.Revoke(claims)
		respondWithSuccess(w, http.StatusOK, responses.Envelope{})
	}
}

// MeHandler handles GET /api/auth/me
func (h *Handlers) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}

		res := h.deps.Services.Members.Get(r.Context(), claims.MemberID())
		if !res.Success {
			respondWithResultError(w, res.Error)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"member": res.Member})
	}
}
