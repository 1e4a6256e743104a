package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func TestAuthService_HashPassword(t *testing.T) {
	auth := &AuthService{}

	password := "securePassword123!"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("hash should not be empty")
	}
	if hash == password {
		t.Error("hash should not equal plain password")
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Error("hash should be bcrypt format")
	}
}

func TestAuthService_HashPassword_UniqueHashes(t *testing.T) {
	auth := &AuthService{}

	password := "samePassword123"
	hash1, _ := auth.HashPassword(password)
	hash2, _ := auth.HashPassword(password)

	if hash1 == hash2 {
		t.Error("same password should produce different hashes (due to salt)")
	}
}

func TestAuthService_VerifyPassword(t *testing.T) {
	auth := &AuthService{}

	password := "correctPassword123!"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !auth.VerifyPassword(hash, password) {
		t.Error("correct password should verify successfully")
	}
	if auth.VerifyPassword(hash, "wrongPassword") {
		t.Error("incorrect password should not verify")
	}
	if auth.VerifyPassword(hash, "") {
		t.Error("empty password should not verify")
	}
	if auth.VerifyPassword("not-a-valid-hash", password) {
		t.Error("invalid hash should not verify")
	}
}

func TestAuthService_GenerateSessionToken(t *testing.T) {
	auth := &AuthService{}

	token, hash, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 32 random bytes and a SHA256 digest, both hex encoded.
	if len(token) != 64 {
		t.Errorf("token should be 64 chars, got %d", len(token))
	}
	if len(hash) != 64 {
		t.Errorf("hash should be 64 chars, got %d", len(hash))
	}
	if token == hash {
		t.Error("token and hash should be different")
	}
	if auth.hashToken(token) != hash {
		t.Error("hashToken should agree with GenerateSessionToken")
	}
}

func TestAuthService_GenerateSessionToken_Unique(t *testing.T) {
	auth := &AuthService{}

	token1, hash1, _ := auth.GenerateSessionToken()
	token2, hash2, _ := auth.GenerateSessionToken()

	if token1 == token2 {
		t.Error("tokens should be unique")
	}
	if hash1 == hash2 {
		t.Error("hashes should be unique")
	}
}

type fakeSessionStore struct {
	setErr      error
	getValue    string
	getErr      error
	expireErr   error
	delErr      error
	setCalls    int
	getCalls    int
	expireCalls int
	delCalls    int
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	f.setCalls++
	return f.setErr
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) {
	f.getCalls++
	return f.getValue, f.getErr
}

func (f *fakeSessionStore) Expire(ctx context.Context, key string, expiration time.Duration) error {
	f.expireCalls++
	return f.expireErr
}

func (f *fakeSessionStore) Del(ctx context.Context, keys ...string) error {
	f.delCalls += len(keys)
	return f.delErr
}

func TestAuthService_CreateSession_StoreFailure_FallsBackToDB(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	execCalled := false

	db := &fakeDB{
		ExecFunc: func(ctx context.Context, sql string, args ...any) (CommandTag, error) {
			execCalled = true
			return fakeCommandTag{rowsAffected: 1}, nil
		},
	}
	store := &fakeSessionStore{setErr: errors.New("redis down")}

	auth := NewAuthService(db, store)
	token, err := auth.CreateSession(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token to be returned")
	}
	if !execCalled {
		t.Fatal("expected database fallback when store set fails")
	}
}

func TestAuthService_ValidateSession_StoreHit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return rowFromValues(userRowValues(userID, "user@nu.edu.pk", "User")...)
		},
	}
	store := &fakeSessionStore{getValue: userID.String()}

	auth := NewAuthService(db, store)
	user, err := auth.ValidateSession(ctx, "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != userID {
		t.Fatalf("expected user ID %v, got %v", userID, user.ID)
	}
	if store.expireCalls != 1 {
		t.Fatalf("expected session ttl refresh, got %d expire calls", store.expireCalls)
	}
}

func TestAuthService_ValidateSession_StoreInvalidUserID(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{}
	store := &fakeSessionStore{getValue: "not-a-uuid"}

	auth := NewAuthService(db, store)
	if _, err := auth.ValidateSession(ctx, "token"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAuthService_ValidateSession_DBExpired(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	expired := time.Now().Add(-2 * time.Hour)
	execCalled := false

	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return rowFromValues(sessionID, userID, "hash", expired, expired)
		},
		ExecFunc: func(ctx context.Context, sql string, args ...any) (CommandTag, error) {
			execCalled = true
			return fakeCommandTag{rowsAffected: 1}, nil
		},
	}
	store := &fakeSessionStore{getErr: errors.New("miss")}

	auth := NewAuthService(db, store)
	_, err := auth.ValidateSession(ctx, "token")
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !execCalled {
		t.Fatal("expected expired session cleanup to hit database")
	}
}

func TestAuthService_ValidateSession_DBNotFound(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) Row {
			return fakeRow{scanFunc: func(dest ...any) error {
				return pgx.ErrNoRows
			}}
		},
	}
	store := &fakeSessionStore{getErr: errors.New("miss")}

	auth := NewAuthService(db, store)
	_, err := auth.ValidateSession(ctx, "token")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_DeleteAllUserSessions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	execCalled := false

	db := &fakeDB{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (Rows, error) {
			return &fakeRows{rows: [][]any{{"hash1"}, {"hash2"}}}, nil
		},
		ExecFunc: func(ctx context.Context, sql string, args ...any) (CommandTag, error) {
			execCalled = true
			return fakeCommandTag{rowsAffected: 2}, nil
		},
	}
	store := &fakeSessionStore{}

	auth := NewAuthService(db, store)
	if err := auth.DeleteAllUserSessions(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.delCalls != 2 {
		t.Fatalf("expected 2 store deletions, got %d", store.delCalls)
	}
	if !execCalled {
		t.Fatal("expected database delete for user sessions")
	}
}

func TestAuthService_DeleteAllUserSessions_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (Rows, error) {
			return nil, errors.New("boom")
		},
	}

	auth := NewAuthService(db, &fakeSessionStore{})
	if err := auth.DeleteAllUserSessions(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error")
	}
}
