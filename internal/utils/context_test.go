package utils

import (
	"context"
	"testing"

	"github.com/molecule-insight/insight-server/models"
)

func TestGetSessionFromContext_Found(t *testing.T) {
	want := models.Session{
		UserID: 42,
		Email:  "jane@example.com",
		Name:   "Jane Doe",
		Avatar: "/uploads/avatars/abc.png",
	}
	ctx := context.WithValue(context.Background(), SessionCtxKey, want)

	got, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok == true for context with session")
	}
	if got != want {
		t.Errorf("expected session %+v, got %+v", want, got)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	got, ok := GetSessionFromContext(context.Background())

	if ok {
		t.Error("expected ok == false for empty context")
	}
	if got != (models.Session{}) {
		t.Errorf("expected zero session, got %+v", got)
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	_, ok := GetSessionFromContext(ctx)

	if ok {
		t.Error("expected ok == false for value of wrong type")
	}
}

func TestGetSessionFromContext_StringKeyDoesNotCollide(t *testing.T) {
	// a plain string key must not match the typed context key
	ctx := context.WithValue(context.Background(), "session", models.Session{UserID: 1}) //nolint:staticcheck

	_, ok := GetSessionFromContext(ctx)

	if ok {
		t.Error("expected ok == false for plain string key")
	}
}

func TestContextKey_String(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected key string 'session', got '%s'", SessionCtxKey.String())
	}
}
