package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository] against the "sessions" table. The session token is
// the primary key; it never appears in log output.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns it with the
// server-assigned CreatedAt.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.SessionID, session.UserID, session.ExpiresAt)

	var saved models.Session
	if err := row.Scan(&saved.SessionID, &saved.UserID, &saved.ExpiresAt, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Str("user_id", session.UserID).Msg("error creating session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindSessionWithUser resolves a session token to its session row and the
// owning user in one JOIN query.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound] (unknown token, or the user
//     row is gone).
//   - Any other driver-level error → wrapped as "unexpected DB error";
//     callers must fail closed but can still distinguish it from a plain
//     missing session for observability.
func (r *sessionRepository) FindSessionWithUser(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	var user models.User
	var email sql.NullString
	row := r.db.QueryRowContext(ctx, findSessionWithUser, sessionID)

	err := row.Scan(
		&session.SessionID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
		&user.UserID, &user.Username, &user.PasswordHash, &email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "*sessionRepository.FindSessionWithUser").Msg("no session was found")
			return models.Session{}, models.User{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionWithUser").Msg("error: unexpected DB error")
		return models.Session{}, models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	user.Email = email.String

	return session, user, nil
}

// UpdateSessionExpiry pushes a session's expiry forward (sliding
// expiration). Zero affected rows means the session vanished between the
// lookup and the extension; that is reported as [ErrSessionNotFound].
func (r *sessionRepository) UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateSessionExpiry, sessionID, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSessionExpiry").Msg("error extending session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes a session row. Deleting an already-absent session
// is not an error: logout must be idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
