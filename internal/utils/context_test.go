package utils

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user_42")

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "user_42" {
		t.Errorf("expected userID=user_42, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %s", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	_, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	session := models.Session{
		SessionID: "token",
		UserID:    "user_1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	ctx := context.WithValue(context.Background(), SessionCtxKey, session)

	got, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.SessionID != session.SessionID || got.UserID != session.UserID {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
}
