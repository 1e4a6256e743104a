package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campusnet/campusnet/internal/models"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// displayName resolves the user-facing name: the profile name when set,
// otherwise the local part of the email.
func displayName(name, email *string) string {
	if name != nil && *name != "" {
		return *name
	}
	if email != nil {
		if at := strings.Index(*email, "@"); at > 0 {
			return (*email)[:at]
		}
	}
	return "User"
}

func orDefault(s *string, def string) string {
	if s != nil && *s != "" {
		return *s
	}
	return def
}

// authorFrom builds the minimal author projection from LEFT JOIN columns.
// A missing user row (nil id) yields a nil author rather than an error, so a
// single dangling reference never fails a whole listing.
func authorFrom(id *uuid.UUID, name, email, avatar *string, defaultAvatar string) *models.Author {
	if id == nil {
		return nil
	}
	return &models.Author{
		ID:     *id,
		Name:   displayName(name, email),
		Avatar: orDefault(avatar, defaultAvatar),
	}
}
