package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService records activity notifications. Creation is best-effort
// from the caller's perspective: a failed notification never fails the action
// that triggered it, so callers log the error and move on.
type NotificationService struct {
	db DBConn
}

func NewNotificationService(db DBConn) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Create(ctx context.Context, userID, actorID uuid.UUID, postID *uuid.UUID, notifType models.NotificationType) error {
	// Self-actions produce no notification.
	if userID == actorID {
		return nil
	}

	if _, err := s.db.Exec(ctx,
		`INSERT INTO notifications (user_id, actor_id, post_id, type)
		 VALUES ($1, $2, $3, $4)`,
		userID, actorID, postID, notifType,
	); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

// NotifyPostLiked notifies the post's author that actor liked it.
func (s *NotificationService) NotifyPostLiked(ctx context.Context, actorID, postID uuid.UUID) error {
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}
	return s.Create(ctx, authorID, actorID, &postID, models.NotificationPostLiked)
}

// NotifyPostCommented notifies the post's author that actor commented.
func (s *NotificationService) NotifyPostCommented(ctx context.Context, actorID, postID uuid.UUID) error {
	authorID, err := s.postAuthor(ctx, postID)
	if err != nil {
		return err
	}
	return s.Create(ctx, authorID, actorID, &postID, models.NotificationPostCommented)
}

func (s *NotificationService) NotifyFriendRequest(ctx context.Context, actorID, recipientID uuid.UUID) error {
	return s.Create(ctx, recipientID, actorID, nil, models.NotificationFriendRequestReceived)
}

func (s *NotificationService) NotifyFriendAccepted(ctx context.Context, actorID, requesterID uuid.UUID) error {
	return s.Create(ctx, requesterID, actorID, nil, models.NotificationFriendRequestAccepted)
}

// ListForUser returns the user's notifications, newest first, with the actor's
// display name resolved.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error) {
	rows, err := s.db.Query(ctx,
		`SELECT n.id, n.user_id, n.actor_id, n.post_id, n.type, n.read, n.created_at,
		        u.name, u.email
		 FROM notifications n
		 LEFT JOIN users u ON u.id = n.actor_id
		 WHERE n.user_id = $1
		 ORDER BY n.created_at DESC, n.id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var name, email *string
		if err := rows.Scan(&n.ID, &n.UserID, &n.ActorID, &n.PostID, &n.Type, &n.Read, &n.CreatedAt,
			&name, &email); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.ActorName = displayName(name, email)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		notificationID, userID,
	)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`,
		userID,
	); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

func (s *NotificationService) postAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error) {
	var authorID uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT author_id FROM posts WHERE id = $1`,
		postID,
	).Scan(&authorID)
	if isNoRows(err) {
		return uuid.Nil, ErrPostNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("getting post author: %w", err)
	}
	return authorID, nil
}
