package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
	"github.com/campusnet/campusnet/internal/services"
)

type FriendHandler struct {
	friendService       services.FriendServiceInterface
	notificationService services.NotificationServiceInterface
}

func NewFriendHandler(friendService services.FriendServiceInterface, notificationService services.NotificationServiceInterface) *FriendHandler {
	return &FriendHandler{
		friendService:       friendService,
		notificationService: notificationService,
	}
}

type SendRequestRequest struct {
	FriendID string `json:"friend_id"`
}

type RespondRequest struct {
	Status string `json:"status"`
}

type FriendshipResponse struct {
	Friendship *models.Friendship `json:"friendship,omitempty"`
	Message    string             `json:"message,omitempty"`
}

type FriendListResponse struct {
	Friendships []models.FriendshipWithUser `json:"friendships"`
}

func (h *FriendHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req SendRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	friendID, err := uuid.Parse(req.FriendID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid friend ID")
		return
	}

	friendship, err := h.friendService.SendRequest(r.Context(), user.ID, friendID)
	if errors.Is(err, services.ErrCannotFriendSelf) {
		writeError(w, http.StatusBadRequest, "Cannot send friend request to yourself")
		return
	}
	if errors.Is(err, services.ErrFriendshipExists) {
		writeError(w, http.StatusConflict, "Friend request already exists")
		return
	}
	if err != nil {
		log.Printf("Error sending friend request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.notificationService.NotifyFriendRequest(r.Context(), user.ID, friendID); err != nil {
		log.Printf("Error creating friend request notification: %v", err)
	}

	writeJSON(w, http.StatusCreated, FriendshipResponse{Friendship: friendship, Message: "Friend request sent"})
}

func (h *FriendHandler) Respond(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	friendshipID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid friendship ID")
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	friendship, err := h.friendService.Respond(r.Context(), user.ID, friendshipID, models.FriendshipStatus(req.Status))
	if errors.Is(err, services.ErrInvalidDecision) {
		writeError(w, http.StatusBadRequest, "Status must be accepted or rejected")
		return
	}
	if errors.Is(err, services.ErrFriendshipNotFound) {
		writeError(w, http.StatusNotFound, "Friend request not found")
		return
	}
	if err != nil {
		log.Printf("Error responding to friend request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if friendship.Status == models.FriendshipStatusAccepted {
		if err := h.notificationService.NotifyFriendAccepted(r.Context(), user.ID, friendship.UserID); err != nil {
			log.Printf("Error creating friend accepted notification: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, FriendshipResponse{Friendship: friendship})
}

func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	friendships, err := h.friendService.ListForUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing friendships: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, FriendListResponse{Friendships: friendships})
}
