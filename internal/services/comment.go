package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

var ErrEmptyComment = errors.New("comment content is required")

// CommentService stores comments and keeps posts.comments_count in step. The
// counter bump and the insert share a transaction so neither lands alone.
type CommentService struct {
	db            DBConn
	defaultAvatar string
}

func NewCommentService(db DBConn, defaultAvatar string) *CommentService {
	return &CommentService{db: db, defaultAvatar: defaultAvatar}
}

func (s *CommentService) Add(ctx context.Context, userID, postID uuid.UUID, content string) (*models.CommentResult, error) {
	content = sanitizeText(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Bumping the counter first doubles as the existence check and takes the
	// row lock, serialising concurrent commenters on the same post.
	var commentsCount int
	err = tx.QueryRow(ctx,
		`UPDATE posts SET comments_count = comments_count + 1
		 WHERE id = $1
		 RETURNING comments_count`,
		postID,
	).Scan(&commentsCount)
	if isNoRows(err) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating comments count: %w", err)
	}

	comment := models.Comment{}
	err = tx.QueryRow(ctx,
		`INSERT INTO comments (post_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, post_id, user_id, content, created_at`,
		postID, userID, content,
	).Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing comment: %w", err)
	}

	return &models.CommentResult{Comment: &comment, CommentsCount: commentsCount}, nil
}

// ListByPost returns the post's comments newest first, with authors attached.
func (s *CommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		        u.id, u.name, u.email, u.avatar
		 FROM comments c
		 LEFT JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = $1
		 ORDER BY c.created_at DESC, c.id DESC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		var authorID *uuid.UUID
		var name, email, avatar *string
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt,
			&authorID, &name, &email, &avatar); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		c.Author = authorFrom(authorID, name, email, avatar, s.defaultAvatar)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

func (s *CommentService) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`,
		postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return count, nil
}
