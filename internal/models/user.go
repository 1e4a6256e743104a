package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Name             string     `json:"name"`
	Birthdate        *time.Time `json:"birthdate,omitempty"`
	Department       *string    `json:"department,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	MaritalStatus    *string    `json:"marital_status,omitempty"`
	Bio              *string    `json:"bio,omitempty"`
	Avatar           *string    `json:"avatar,omitempty"`
	ProfileCompleted bool       `json:"profile_completed"`
	EmailVerified    bool       `json:"email_verified"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DisplayName falls back to the local part of the email for users who have
// not completed their profile yet.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "User"
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
}

type CompleteProfileParams struct {
	Name          string
	Birthdate     time.Time
	Department    string
	Gender        string
	MaritalStatus string
	Bio           *string
	Avatar        *string
}

type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
