package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

type mockUserService struct {
	CreateFunc            func(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*models.User, error)
	CompleteProfileFunc   func(ctx context.Context, userID uuid.UUID, params models.CompleteProfileParams) (*models.User, error)
	MarkEmailVerifiedFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserService) CompleteProfile(ctx context.Context, userID uuid.UUID, params models.CompleteProfileParams) (*models.User, error) {
	if m.CompleteProfileFunc != nil {
		return m.CompleteProfileFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *mockUserService) MarkEmailVerified(ctx context.Context, userID uuid.UUID) error {
	if m.MarkEmailVerifiedFunc != nil {
		return m.MarkEmailVerifiedFunc(ctx, userID)
	}
	return nil
}

type mockAuthService struct {
	HashPasswordFunc          func(password string) (string, error)
	VerifyPasswordFunc        func(hash, password string) bool
	CreateSessionFunc         func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateSessionFunc       func(ctx context.Context, token string) (*models.User, error)
	DeleteSessionFunc         func(ctx context.Context, token string) error
	DeleteAllUserSessionsFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	if m.HashPasswordFunc != nil {
		return m.HashPasswordFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockAuthService) VerifyPassword(hash, password string) bool {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(hash, password)
	}
	return hash == "hashed_"+password
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, userID)
	}
	return "test_session_token", nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockAuthService) DeleteSession(ctx context.Context, token string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, token)
	}
	return nil
}

func (m *mockAuthService) DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAllUserSessionsFunc != nil {
		return m.DeleteAllUserSessionsFunc(ctx, userID)
	}
	return nil
}

type mockEmailService struct {
	SendVerificationEmailFunc func(ctx context.Context, userID uuid.UUID, email string) error
	VerifyEmailFunc           func(ctx context.Context, token string) error
}

func (m *mockEmailService) SendVerificationEmail(ctx context.Context, userID uuid.UUID, email string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(ctx, userID, email)
	}
	return nil
}

func (m *mockEmailService) VerifyEmail(ctx context.Context, token string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, token)
	}
	return nil
}

type mockPostService struct {
	CreateFunc     func(ctx context.Context, params models.CreatePostParams) (*models.Post, error)
	DeleteFunc     func(ctx context.Context, postID, requesterID uuid.UUID) error
	ListFunc       func(ctx context.Context) ([]models.Post, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.Post, error)
}

func (m *mockPostService) Create(ctx context.Context, params models.CreatePostParams) (*models.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return &models.Post{}, nil
}

func (m *mockPostService) Delete(ctx context.Context, postID, requesterID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, postID, requesterID)
	}
	return nil
}

func (m *mockPostService) List(ctx context.Context) ([]models.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Post{}, nil
}

func (m *mockPostService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.Post{}, nil
}

type mockLikeService struct {
	ToggleFunc     func(ctx context.Context, userID, postID uuid.UUID) (*models.LikeResult, error)
	GetForPostFunc func(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResult, error)
}

func (m *mockLikeService) Toggle(ctx context.Context, userID, postID uuid.UUID) (*models.LikeResult, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, postID)
	}
	return &models.LikeResult{}, nil
}

func (m *mockLikeService) GetForPost(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResult, error) {
	if m.GetForPostFunc != nil {
		return m.GetForPostFunc(ctx, postID, userID)
	}
	return &models.LikeResult{}, nil
}

type mockCommentService struct {
	AddFunc         func(ctx context.Context, userID, postID uuid.UUID, content string) (*models.CommentResult, error)
	ListByPostFunc  func(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	CountByPostFunc func(ctx context.Context, postID uuid.UUID) (int, error)
}

func (m *mockCommentService) Add(ctx context.Context, userID, postID uuid.UUID, content string) (*models.CommentResult, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, postID, content)
	}
	return &models.CommentResult{}, nil
}

func (m *mockCommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	if m.ListByPostFunc != nil {
		return m.ListByPostFunc(ctx, postID)
	}
	return []models.Comment{}, nil
}

func (m *mockCommentService) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	if m.CountByPostFunc != nil {
		return m.CountByPostFunc(ctx, postID)
	}
	return 0, nil
}

type mockFriendService struct {
	SendRequestFunc func(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.Friendship, error)
	RespondFunc     func(ctx context.Context, responderID, friendshipID uuid.UUID, decision models.FriendshipStatus) (*models.Friendship, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.FriendshipWithUser, error)
	ExistsFunc      func(ctx context.Context, userID, otherUserID uuid.UUID) (bool, error)
}

func (m *mockFriendService) SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.Friendship, error) {
	if m.SendRequestFunc != nil {
		return m.SendRequestFunc(ctx, requesterID, recipientID)
	}
	return &models.Friendship{}, nil
}

func (m *mockFriendService) Respond(ctx context.Context, responderID, friendshipID uuid.UUID, decision models.FriendshipStatus) (*models.Friendship, error) {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, responderID, friendshipID, decision)
	}
	return &models.Friendship{}, nil
}

func (m *mockFriendService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.FriendshipWithUser, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return []models.FriendshipWithUser{}, nil
}

func (m *mockFriendService) Exists(ctx context.Context, userID, otherUserID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, otherUserID)
	}
	return false, nil
}

type mockSuggestionService struct {
	SuggestUsersFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]models.SuggestedUser, error)
}

func (m *mockSuggestionService) SuggestUsers(ctx context.Context, userID uuid.UUID, limit int) ([]models.SuggestedUser, error) {
	if m.SuggestUsersFunc != nil {
		return m.SuggestUsersFunc(ctx, userID, limit)
	}
	return []models.SuggestedUser{}, nil
}

type mockNotificationService struct {
	NotifyPostLikedFunc      func(ctx context.Context, actorID, postID uuid.UUID) error
	NotifyPostCommentedFunc  func(ctx context.Context, actorID, postID uuid.UUID) error
	NotifyFriendRequestFunc  func(ctx context.Context, actorID, recipientID uuid.UUID) error
	NotifyFriendAcceptedFunc func(ctx context.Context, actorID, requesterID uuid.UUID) error
	ListForUserFunc          func(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)
	UnreadCountFunc          func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFunc             func(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllReadFunc          func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockNotificationService) NotifyPostLiked(ctx context.Context, actorID, postID uuid.UUID) error {
	if m.NotifyPostLikedFunc != nil {
		return m.NotifyPostLikedFunc(ctx, actorID, postID)
	}
	return nil
}

func (m *mockNotificationService) NotifyPostCommented(ctx context.Context, actorID, postID uuid.UUID) error {
	if m.NotifyPostCommentedFunc != nil {
		return m.NotifyPostCommentedFunc(ctx, actorID, postID)
	}
	return nil
}

func (m *mockNotificationService) NotifyFriendRequest(ctx context.Context, actorID, recipientID uuid.UUID) error {
	if m.NotifyFriendRequestFunc != nil {
		return m.NotifyFriendRequestFunc(ctx, actorID, recipientID)
	}
	return nil
}

func (m *mockNotificationService) NotifyFriendAccepted(ctx context.Context, actorID, requesterID uuid.UUID) error {
	if m.NotifyFriendAcceptedFunc != nil {
		return m.NotifyFriendAcceptedFunc(ctx, actorID, requesterID)
	}
	return nil
}

func (m *mockNotificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, limit)
	}
	return []models.Notification{}, nil
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, userID, notificationID)
	}
	return nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

type mockUploadService struct {
	UploadFunc func(ctx context.Context, dataURI string) (string, error)
}

func (m *mockUploadService) Upload(ctx context.Context, dataURI string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, dataURI)
	}
	return "https://cdn.example.com/uploads/fixed", nil
}
