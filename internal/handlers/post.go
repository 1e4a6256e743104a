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

type PostHandler struct {
	postService         services.PostServiceInterface
	likeService         services.LikeServiceInterface
	commentService      services.CommentServiceInterface
	notificationService services.NotificationServiceInterface
}

func NewPostHandler(
	postService services.PostServiceInterface,
	likeService services.LikeServiceInterface,
	commentService services.CommentServiceInterface,
	notificationService services.NotificationServiceInterface,
) *PostHandler {
	return &PostHandler{
		postService:         postService,
		likeService:         likeService,
		commentService:      commentService,
		notificationService: notificationService,
	}
}

type CreatePostRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type PostListResponse struct {
	Posts []models.Post `json:"posts"`
}

type LikeResponse struct {
	LikesCount int  `json:"likesCount"`
	HasLiked   bool `json:"hasLiked"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	Comment       *models.Comment `json:"comment"`
	CommentsCount int             `json:"commentsCount"`
}

type CommentListResponse struct {
	Comments []models.Comment `json:"comments"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), models.CreatePostParams{
		AuthorID: user.ID,
		Content:  req.Content,
		Images:   req.Images,
	})
	if errors.Is(err, services.ErrEmptyPost) {
		writeError(w, http.StatusBadRequest, "Post must have content or images")
		return
	}
	if errors.Is(err, services.ErrInvalidImage) {
		writeError(w, http.StatusBadRequest, "Images must be data URIs")
		return
	}
	if err != nil {
		log.Printf("Error creating post: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	posts, err := h.postService.List(r.Context())
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts})
}

func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	posts, err := h.postService.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing user posts: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts})
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	err = h.postService.Delete(r.Context(), postID, user.ID)
	if errors.Is(err, services.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if errors.Is(err, services.ErrNotPostAuthor) {
		writeError(w, http.StatusForbidden, "Only the author can delete this post")
		return
	}
	if err != nil {
		log.Printf("Error deleting post: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	result, err := h.likeService.Toggle(r.Context(), user.ID, postID)
	if errors.Is(err, services.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if errors.Is(err, services.ErrLikeExists) {
		writeError(w, http.StatusConflict, "Post already liked")
		return
	}
	if err != nil {
		log.Printf("Error toggling like: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if result.HasLiked {
		if err := h.notificationService.NotifyPostLiked(r.Context(), user.ID, postID); err != nil {
			log.Printf("Error creating like notification: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, LikeResponse{LikesCount: result.LikesCount, HasLiked: result.HasLiked})
}

func (h *PostHandler) GetLikes(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	result, err := h.likeService.GetForPost(r.Context(), postID, user.ID)
	if err != nil {
		log.Printf("Error getting likes: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{LikesCount: result.LikesCount, HasLiked: result.HasLiked})
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.commentService.Add(r.Context(), user.ID, postID, req.Content)
	if errors.Is(err, services.ErrEmptyComment) {
		writeError(w, http.StatusBadRequest, "Comment content is required")
		return
	}
	if errors.Is(err, services.ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("Error adding comment: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.notificationService.NotifyPostCommented(r.Context(), user.ID, postID); err != nil {
		log.Printf("Error creating comment notification: %v", err)
	}

	writeJSON(w, http.StatusCreated, CommentResponse{
		Comment:       result.Comment,
		CommentsCount: result.CommentsCount,
	})
}

func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	comments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, CommentListResponse{Comments: comments})
}

func (h *PostHandler) CountComments(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	count, err := h.commentService.CountByPost(r.Context(), postID)
	if err != nil {
		log.Printf("Error counting comments: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}
