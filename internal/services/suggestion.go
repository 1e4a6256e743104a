package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

var ErrNoEmailDomain = errors.New("user email has no domain")

// SuggestionService proposes people the user may know: accounts sharing the
// user's email domain that have no friendship row with them in either
// direction.
type SuggestionService struct {
	db            DBConn
	defaultAvatar string
	maxLimit      int
}

func NewSuggestionService(db DBConn, defaultAvatar string, maxLimit int) *SuggestionService {
	return &SuggestionService{db: db, defaultAvatar: defaultAvatar, maxLimit: maxLimit}
}

// SuggestUsers returns up to limit candidates. Callers grow the page by
// re-requesting with a larger limit; the ordering is stable, so earlier
// results keep their positions. A non-positive or oversized limit falls back
// to the configured maximum.
func (s *SuggestionService) SuggestUsers(ctx context.Context, userID uuid.UUID, limit int) ([]models.SuggestedUser, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	var email string
	err := s.db.QueryRow(ctx,
		`SELECT email FROM users WHERE id = $1`,
		userID,
	).Scan(&email)
	if isNoRows(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user email: %w", err)
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return nil, ErrNoEmailDomain
	}
	domain := email[at+1:]

	rows, err := s.db.Query(ctx,
		`SELECT u.id, u.name, u.email, u.avatar, u.department
		 FROM users u
		 WHERE u.id <> $1
		   AND split_part(u.email, '@', 2) = $2
		   AND NOT EXISTS (
			SELECT 1 FROM friends f
			WHERE (f.user_id = $1 AND f.friend_id = u.id)
			   OR (f.user_id = u.id AND f.friend_id = $1)
		   )
		 ORDER BY u.created_at, u.id
		 LIMIT $3`,
		userID, domain, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []models.SuggestedUser{}
	for rows.Next() {
		var id uuid.UUID
		var name, candidateEmail, avatar, department *string
		if err := rows.Scan(&id, &name, &candidateEmail, &avatar, &department); err != nil {
			return nil, fmt.Errorf("scanning suggestion: %w", err)
		}
		suggestions = append(suggestions, models.SuggestedUser{
			ID:         id,
			Name:       displayName(name, candidateEmail),
			Avatar:     orDefault(avatar, s.defaultAvatar),
			Department: orDefault(department, ""),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating suggestions: %w", err)
	}

	return suggestions, nil
}
