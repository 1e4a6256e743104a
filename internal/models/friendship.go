package models

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// Friendship is a directed request row: UserID sent the request, FriendID
// received it. Once accepted the edge is symmetric in meaning.
type Friendship struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	FriendID  uuid.UUID        `json:"friend_id"`
	Status    FriendshipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// FriendProfile is the public projection of the party on the other side of a
// friendship row.
type FriendProfile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Department string    `json:"department"`
}

type FriendshipWithUser struct {
	Friendship
	Friend *FriendProfile `json:"friend"`
}

// SuggestedUser is a "people you may know" candidate. FriendshipStatus and
// IsRequester are kept for wire compatibility with older clients; candidates
// with an existing relationship are filtered out, so they stay null/false.
type SuggestedUser struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Avatar           string            `json:"avatar"`
	Department       string            `json:"department"`
	FriendshipStatus *FriendshipStatus `json:"friendshipStatus"`
	IsRequester      bool              `json:"isRequester"`
}
