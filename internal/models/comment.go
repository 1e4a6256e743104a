package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    *Author   `json:"author"`
}

// CommentResult pairs a created comment with the post's counter as updated in
// the same transaction.
type CommentResult struct {
	Comment       *Comment `json:"comment"`
	CommentsCount int      `json:"comments_count"`
}

// LikeResult reports the like state after a toggle. LikesCount is recomputed
// from the like rows, never read from the cached counter.
type LikeResult struct {
	LikesCount int  `json:"likes_count"`
	HasLiked   bool `json:"has_liked"`
}
