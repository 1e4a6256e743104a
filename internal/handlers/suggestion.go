package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campusnet/campusnet/internal/models"
	"github.com/campusnet/campusnet/internal/services"
)

type SuggestionHandler struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionHandler(suggestionService services.SuggestionServiceInterface) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

type SuggestionListResponse struct {
	Suggestions []models.SuggestedUser `json:"suggestions"`
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// "Show more" grows the page by re-requesting with a larger limit; the
	// service clamps it to the configured maximum.
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	suggestions, err := h.suggestionService.SuggestUsers(r.Context(), user.ID, limit)
	if errors.Is(err, services.ErrNoEmailDomain) {
		// No domain means no peers to match against.
		writeJSON(w, http.StatusOK, SuggestionListResponse{Suggestions: []models.SuggestedUser{}})
		return
	}
	if err != nil {
		log.Printf("Error listing suggestions: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, SuggestionListResponse{Suggestions: suggestions})
}
