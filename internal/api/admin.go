package api

import (
	"errors"
	"io"
	"net/http"

	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/logging"
	"framework4future/portal/internal/models/dtos/responses"
	"framework4future/portal/internal/storage"
)

// DashboardHandler handles GET /api/admin/dashboard
//
// @Summary      Admin dashboard counts
// @Tags         Admin
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  responses.Envelope
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *Handlers) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.deps.Services.Dashboard.Summary(r.Context())
		if err != nil {
			logging.Error("Dashboard summary failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, constants.MsgDatabaseError)
			return
		}
		respondWithSuccess(w, http.StatusOK, responses.Envelope{"dashboard": summary})
	}
}

const multipartOverhead = 64 << 10

// UploadImageHandler handles POST /api/upload-image with a multipart "file" field.
func (h *Handlers) UploadImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxBytes := h.deps.Config.Upload.MaxSizeMB << 20
		if maxBytes <= 0 {
			maxBytes = 5 << 20
		}
		// the body also carries multipart framing; the image itself is checked below
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgImageRequired)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgImageRequired)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil || len(data) == 0 {
			respondWithError(w, http.StatusBadRequest, constants.MsgImageRequired)
			return
		}
		if int64(len(data)) > maxBytes {
			respondWithError(w, http.StatusBadRequest, constants.MsgImageTooLarge)
			return
		}

		url, err := h.deps.Services.Images.Save(r.Context(), data)
		switch {
		case errors.Is(err, storage.ErrNotImage):
			respondWithError(w, http.StatusBadRequest, constants.MsgImageInvalid)
			return
		case err != nil:
			logging.Error("Image upload failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, constants.MsgUploadFailed)
			return
		}

		respondWithSuccess(w, http.StatusOK, responses.Envelope{"url": url})
	}
}
