package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService handles account registration and credential verification.
// It never sees or returns plaintext passwords past its own boundary.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
}

// SessionService manages the lifecycle of opaque session tokens.
type SessionService interface {
	// Create issues a new session for userID with a full TTL.
	Create(ctx context.Context, userID string) (models.Session, error)

	// Validate resolves a token to its session and owning user. Expired
	// or unknown tokens yield ErrSessionNotFound. When less than half the
	// TTL remains, the expiry is extended and Session.Refreshed is set so
	// the transport re-issues the cookie.
	Validate(ctx context.Context, token string) (models.Session, models.User, error)

	// Invalidate deletes the session; subsequent Validate calls with the
	// same token return ErrSessionNotFound.
	Invalidate(ctx context.Context, sessionID string) error

	// TTL reports the configured session lifetime.
	TTL() time.Duration
}

// TaskService exposes owner-scoped task CRUD. The userID argument always
// comes from the authenticated session, never from client input.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID string, task models.TaskRequest) (models.Task, error)
	GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID int64, task models.TaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID int64) error
}
