package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrEmptyPost     = errors.New("post must have content or images")
	ErrNotPostAuthor = errors.New("only the author can delete a post")
)

// ImageUploader accepts a data URI and returns a hosted URL.
type ImageUploader interface {
	Upload(ctx context.Context, dataURI string) (string, error)
}

// PostService owns posts and the feed projection.
type PostService struct {
	db            DBConn
	uploader      ImageUploader
	defaultAvatar string
}

func NewPostService(db DBConn, uploader ImageUploader, defaultAvatar string) *PostService {
	return &PostService{db: db, uploader: uploader, defaultAvatar: defaultAvatar}
}

func (s *PostService) Create(ctx context.Context, params models.CreatePostParams) (*models.Post, error) {
	content := sanitizeText(params.Content)
	if content == "" && len(params.Images) == 0 {
		return nil, ErrEmptyPost
	}

	images := make([]string, 0, len(params.Images))
	for _, img := range params.Images {
		url, err := s.uploader.Upload(ctx, img)
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}

	post := &models.Post{}
	var rawImages string
	err := s.db.QueryRow(ctx,
		`INSERT INTO posts (author_id, content, images)
		 VALUES ($1, $2, $3)
		 RETURNING id, author_id, content, images, likes_count, comments_count, created_at`,
		params.AuthorID, content, models.EncodeImageList(images),
	).Scan(&post.ID, &post.AuthorID, &post.Content, &rawImages, &post.LikesCount, &post.CommentsCount, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	post.Images = models.DecodeImageList(rawImages)

	return post, nil
}

// Delete removes a post and, via cascading foreign keys, its likes, comments
// and notifications. Only the author may delete.
func (s *PostService) Delete(ctx context.Context, postID, requesterID uuid.UUID) error {
	var authorID uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT author_id FROM posts WHERE id = $1`,
		postID,
	).Scan(&authorID)
	if isNoRows(err) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("getting post: %w", err)
	}

	if authorID != requesterID {
		return ErrNotPostAuthor
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	return nil
}

// List returns the feed, newest first, with the author projection attached.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.listPosts(ctx,
		`SELECT p.id, p.author_id, p.content, p.images, p.likes_count, p.comments_count, p.created_at,
		        u.id, u.name, u.email, u.avatar
		 FROM posts p
		 LEFT JOIN users u ON u.id = p.author_id
		 ORDER BY p.created_at DESC, p.id DESC`,
	)
}

func (s *PostService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	return s.listPosts(ctx,
		`SELECT p.id, p.author_id, p.content, p.images, p.likes_count, p.comments_count, p.created_at,
		        u.id, u.name, u.email, u.avatar
		 FROM posts p
		 LEFT JOIN users u ON u.id = p.author_id
		 WHERE p.author_id = $1
		 ORDER BY p.created_at DESC, p.id DESC`,
		userID,
	)
}

func (s *PostService) listPosts(ctx context.Context, sql string, args ...any) ([]models.Post, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		var rawImages string
		var authorID *uuid.UUID
		var name, email, avatar *string
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &rawImages, &p.LikesCount, &p.CommentsCount, &p.CreatedAt,
			&authorID, &name, &email, &avatar); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		p.Images = models.DecodeImageList(rawImages)
		p.Author = authorFrom(authorID, name, email, avatar, s.defaultAvatar)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posts: %w", err)
	}

	return posts, nil
}
