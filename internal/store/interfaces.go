package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository persists user accounts. Usernames arrive already
// lowercased from the service layer; the repository relies on the
// database UNIQUE constraint for duplicate detection.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRepository persists browser sessions keyed by their opaque token.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSessionWithUser resolves a token to its session and owning user
	// in a single query. Expired sessions are still returned; deciding
	// what "expired" means is the service's job.
	FindSessionWithUser(ctx context.Context, sessionID string) (models.Session, models.User, error)

	UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// TaskRepository persists tasks. Every operation is owner-scoped: the
// userID argument participates in the WHERE clause of each statement, so
// an owner mismatch and a missing row are the same zero-rows outcome.
type TaskRepository interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID int64) error
}
