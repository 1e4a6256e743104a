package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationFriendRequestReceived NotificationType = "friend_request_received"
	NotificationFriendRequestAccepted NotificationType = "friend_request_accepted"
	NotificationPostLiked             NotificationType = "post_liked"
	NotificationPostCommented         NotificationType = "post_commented"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	ActorID   uuid.UUID        `json:"actor_id"`
	PostID    *uuid.UUID       `json:"post_id,omitempty"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	ActorName string           `json:"actor_name,omitempty"`
}
