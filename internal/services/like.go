package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusnet/campusnet/internal/models"
)

var ErrLikeExists = errors.New("like already exists")

// LikeService toggles likes and keeps posts.likes_count consistent with the
// like rows. Both writes happen in one transaction; the counter is recomputed
// from COUNT(*) rather than incremented, so a toggle can never drift it.
type LikeService struct {
	db DBConn
}

func NewLikeService(db DBConn) *LikeService {
	return &LikeService{db: db}
}

func (s *LikeService) Toggle(ctx context.Context, userID, postID uuid.UUID) (*models.LikeResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`,
		postID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND post_id = $2`,
		userID, postID,
	)
	if err != nil {
		return nil, fmt.Errorf("removing like: %w", err)
	}

	hasLiked := tag.RowsAffected() == 0
	if hasLiked {
		if _, err := tx.Exec(ctx,
			`INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`,
			userID, postID,
		); err != nil {
			// Two toggles racing on the same pair both miss the delete; the
			// unique (user_id, post_id) index turns the loser into a conflict.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, ErrLikeExists
			}
			return nil, fmt.Errorf("adding like: %w", err)
		}
	}

	var likesCount int
	err = tx.QueryRow(ctx,
		`UPDATE posts
		 SET likes_count = (SELECT COUNT(*) FROM likes WHERE post_id = $1)
		 WHERE id = $1
		 RETURNING likes_count`,
		postID,
	).Scan(&likesCount)
	if err != nil {
		return nil, fmt.Errorf("updating likes count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing like toggle: %w", err)
	}

	return &models.LikeResult{LikesCount: likesCount, HasLiked: hasLiked}, nil
}

// GetForPost returns the like count for a post and whether the viewer has
// liked it, in one query.
func (s *LikeService) GetForPost(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResult, error) {
	result := &models.LikeResult{}
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE user_id = $2) > 0
		 FROM likes WHERE post_id = $1`,
		postID, userID,
	).Scan(&result.LikesCount, &result.HasLiked)
	if err != nil {
		return nil, fmt.Errorf("getting likes: %w", err)
	}

	return result, nil
}
