package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/campusnet/campusnet/internal/services"
)

type UploadHandler struct {
	uploadService services.UploadServiceInterface
}

func NewUploadHandler(uploadService services.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type UploadRequest struct {
	Image string `json:"image"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	url, err := h.uploadService.Upload(r.Context(), req.Image)
	if errors.Is(err, services.ErrInvalidImage) {
		writeError(w, http.StatusBadRequest, "Image must be a data URI")
		return
	}
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{URL: url})
}
