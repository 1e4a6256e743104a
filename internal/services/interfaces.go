package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

// UserServiceInterface defines the contract for user operations.
type UserServiceInterface interface {
	Create(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, params models.CompleteProfileParams) (*models.User, error)
	MarkEmailVerified(ctx context.Context, userID uuid.UUID) error
}

// AuthServiceInterface defines the contract for authentication operations.
type AuthServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) bool
	CreateSession(ctx context.Context, userID uuid.UUID) (token string, err error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error
}

// PostServiceInterface defines the contract for post operations used by handlers.
type PostServiceInterface interface {
	Create(ctx context.Context, params models.CreatePostParams) (*models.Post, error)
	Delete(ctx context.Context, postID, requesterID uuid.UUID) error
	List(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error)
}

// LikeServiceInterface defines the contract for like operations.
type LikeServiceInterface interface {
	Toggle(ctx context.Context, userID, postID uuid.UUID) (*models.LikeResult, error)
	GetForPost(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResult, error)
}

// CommentServiceInterface defines the contract for comment operations.
type CommentServiceInterface interface {
	Add(ctx context.Context, userID, postID uuid.UUID, content string) (*models.CommentResult, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

// FriendServiceInterface defines the contract for friendship operations.
type FriendServiceInterface interface {
	SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.Friendship, error)
	Respond(ctx context.Context, responderID, friendshipID uuid.UUID, decision models.FriendshipStatus) (*models.Friendship, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.FriendshipWithUser, error)
	Exists(ctx context.Context, userID, otherUserID uuid.UUID) (bool, error)
}

// SuggestionServiceInterface defines the contract for suggestion operations.
type SuggestionServiceInterface interface {
	SuggestUsers(ctx context.Context, userID uuid.UUID, limit int) ([]models.SuggestedUser, error)
}

// NotificationServiceInterface defines the contract for notification operations.
type NotificationServiceInterface interface {
	NotifyPostLiked(ctx context.Context, actorID, postID uuid.UUID) error
	NotifyPostCommented(ctx context.Context, actorID, postID uuid.UUID) error
	NotifyFriendRequest(ctx context.Context, actorID, recipientID uuid.UUID) error
	NotifyFriendAccepted(ctx context.Context, actorID, requesterID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// EmailServiceInterface defines the contract for email operations.
type EmailServiceInterface interface {
	SendVerificationEmail(ctx context.Context, userID uuid.UUID, email string) error
	VerifyEmail(ctx context.Context, token string) error
}

// UploadServiceInterface defines the contract for image uploads.
type UploadServiceInterface interface {
	Upload(ctx context.Context, dataURI string) (string, error)
}
