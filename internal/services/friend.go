package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusnet/campusnet/internal/models"
)

var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrFriendshipExists   = errors.New("friendship already exists")
	ErrCannotFriendSelf   = errors.New("cannot send friend request to yourself")
	ErrInvalidDecision    = errors.New("decision must be accepted or rejected")
)

// FriendService owns the friendship edge store. The central invariant is at
// most one row per unordered user pair: every write path checks both
// orderings, and the unique pair index closes the remaining race window.
type FriendService struct {
	db            DBConn
	defaultAvatar string
}

func NewFriendService(db DBConn, defaultAvatar string) *FriendService {
	return &FriendService{db: db, defaultAvatar: defaultAvatar}
}

func (s *FriendService) SendRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.Friendship, error) {
	if requesterID == recipientID {
		return nil, ErrCannotFriendSelf
	}

	// Check both orderings: a rejected or pending edge in either direction
	// blocks a new request.
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM friends
			WHERE (user_id = $1 AND friend_id = $2)
			   OR (user_id = $2 AND friend_id = $1)
		)`,
		requesterID, recipientID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking friendship existence: %w", err)
	}
	if exists {
		return nil, ErrFriendshipExists
	}

	friendship := &models.Friendship{}
	err = s.db.QueryRow(ctx,
		`INSERT INTO friends (user_id, friend_id, status)
		 VALUES ($1, $2, 'pending')
		 RETURNING id, user_id, friend_id, status, created_at`,
		requesterID, recipientID,
	).Scan(&friendship.ID, &friendship.UserID, &friendship.FriendID, &friendship.Status, &friendship.CreatedAt)
	if err != nil {
		// Concurrent duplicate requests race past the existence check; the
		// unique pair index turns the loser into a conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrFriendshipExists
		}
		return nil, fmt.Errorf("creating friendship: %w", err)
	}

	return friendship, nil
}

// Respond accepts or rejects a pending request. Only the recipient of the
// request may respond; anyone else sees the row as missing. Rejected rows are
// kept so the pair cannot re-request.
func (s *FriendService) Respond(ctx context.Context, responderID, friendshipID uuid.UUID, decision models.FriendshipStatus) (*models.Friendship, error) {
	if decision != models.FriendshipStatusAccepted && decision != models.FriendshipStatusRejected {
		return nil, ErrInvalidDecision
	}

	friendship := &models.Friendship{}
	err := s.db.QueryRow(ctx,
		`UPDATE friends SET status = $1
		 WHERE id = $2 AND friend_id = $3 AND status = 'pending'
		 RETURNING id, user_id, friend_id, status, created_at`,
		decision, friendshipID, responderID,
	).Scan(&friendship.ID, &friendship.UserID, &friendship.FriendID, &friendship.Status, &friendship.CreatedAt)
	if isNoRows(err) {
		return nil, ErrFriendshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("responding to friendship: %w", err)
	}

	return friendship, nil
}

// ListForUser returns every friendship row touching the user, annotated with
// the other party's public profile.
func (s *FriendService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.FriendshipWithUser, error) {
	rows, err := s.db.Query(ctx,
		`SELECT f.id, f.user_id, f.friend_id, f.status, f.created_at,
		        u.id, u.name, u.email, u.avatar, u.department
		 FROM friends f
		 LEFT JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		 WHERE f.user_id = $1 OR f.friend_id = $1
		 ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing friendships: %w", err)
	}
	defer rows.Close()

	friendships := []models.FriendshipWithUser{}
	for rows.Next() {
		var f models.FriendshipWithUser
		var otherID *uuid.UUID
		var name, email, avatar, department *string
		if err := rows.Scan(&f.ID, &f.UserID, &f.FriendID, &f.Status, &f.CreatedAt,
			&otherID, &name, &email, &avatar, &department); err != nil {
			return nil, fmt.Errorf("scanning friendship: %w", err)
		}
		if otherID != nil {
			f.Friend = &models.FriendProfile{
				ID:         *otherID,
				Name:       displayName(name, email),
				Avatar:     orDefault(avatar, s.defaultAvatar),
				Department: orDefault(department, ""),
			}
		}
		friendships = append(friendships, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating friendships: %w", err)
	}

	return friendships, nil
}

// Exists reports whether any friendship row connects the pair, in either
// direction and regardless of status.
func (s *FriendService) Exists(ctx context.Context, userID, otherUserID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM friends
			WHERE (user_id = $1 AND friend_id = $2)
			   OR (user_id = $2 AND friend_id = $1)
		)`,
		userID, otherUserID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking friendship: %w", err)
	}
	return exists, nil
}
