package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusnet/campusnet/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrEmailNotAllowed    = errors.New("email domain is not allowed")
	ErrInvalidProfile     = errors.New("invalid profile data")
)

const userColumns = `id, email, password_hash, name, birthdate, department, gender,
	marital_status, bio, avatar, profile_completed, email_verified, created_at, updated_at`

// UserService owns accounts. Registration is restricted to the configured
// email suffixes so only campus addresses can sign up.
type UserService struct {
	db              DBConn
	allowedSuffixes []string
}

func NewUserService(db DBConn, allowedSuffixes []string) *UserService {
	return &UserService{db: db, allowedSuffixes: allowedSuffixes}
}

func (s *UserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if !s.emailAllowed(email) {
		return nil, ErrEmailNotAllowed
	}

	user := &models.User{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		email, params.PasswordHash, sanitizeText(params.Name),
	).Scan(userDest(user)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(userDest(user)...)
	if isNoRows(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by id: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(userDest(user)...)
	if isNoRows(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return user, nil
}

// CompleteProfile fills in the onboarding fields and flips profile_completed.
func (s *UserService) CompleteProfile(ctx context.Context, userID uuid.UUID, params models.CompleteProfileParams) (*models.User, error) {
	name := sanitizeText(params.Name)
	if name == "" || params.Department == "" || params.Birthdate.IsZero() {
		return nil, ErrInvalidProfile
	}
	switch params.Gender {
	case "male", "female", "other":
	default:
		return nil, ErrInvalidProfile
	}
	switch params.MaritalStatus {
	case "single", "married":
	default:
		return nil, ErrInvalidProfile
	}

	var bio *string
	if params.Bio != nil {
		clean := sanitizeText(*params.Bio)
		bio = &clean
	}

	user := &models.User{}
	err := s.db.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, birthdate = $3, department = $4, gender = $5,
		     marital_status = $6, bio = $7, avatar = COALESCE($8, avatar),
		     profile_completed = true, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		userID, name, params.Birthdate, sanitizeText(params.Department),
		params.Gender, params.MaritalStatus, bio, params.Avatar,
	).Scan(userDest(user)...)
	if isNoRows(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("completing profile: %w", err)
	}

	return user, nil
}

func (s *UserService) MarkEmailVerified(ctx context.Context, userID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET email_verified = true, updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("marking email verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) emailAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	for _, suffix := range s.allowedSuffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}

func userDest(u *models.User) []any {
	return []any{
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Birthdate, &u.Department,
		&u.Gender, &u.MaritalStatus, &u.Bio, &u.Avatar, &u.ProfileCompleted,
		&u.EmailVerified, &u.CreatedAt, &u.UpdatedAt,
	}
}
