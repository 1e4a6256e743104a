package handlers

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/campusnet/campusnet/internal/models"
)

func TestGetUserFromContext_Empty(t *testing.T) {
	if user := GetUserFromContext(context.Background()); user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestSetAndGetUserFromContext(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ali@nu.edu.pk"}

	ctx := SetUserInContext(context.Background(), user)

	got := GetUserFromContext(ctx)
	if got == nil || got.ID != user.ID {
		t.Errorf("expected user %s, got %+v", user.ID, got)
	}
}
