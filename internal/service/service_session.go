package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ErrSessionNotFound re-exports the store sentinel so that transport code
// matching on session absence does not need a store import.
var ErrSessionNotFound = store.ErrSessionNotFound

// sessionService is the concrete implementation of SessionService.
//
// Sessions use sliding expiration: every session is issued with a full
// TTL, and a validation that finds less than half the TTL remaining pushes
// the expiry back out to a full TTL. A session therefore dies only after
// a full TTL of inactivity.
type sessionService struct {
	sessionRepository store.SessionRepository
	ttl               time.Duration
	logger            *logger.Logger
}

// NewSessionService constructs a SessionService with the TTL policy from cfg.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ttl:               cfg.SessionTTL,
		logger:            logger,
	}
}

// Create issues a new session for userID: a fresh CSPRNG token with a full
// TTL, persisted before it is handed out.
func (s *sessionService) Create(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	session := models.Session{
		SessionID: token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	createdSession, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return createdSession, nil
}

// Validate resolves token to a live session and its owning user.
//
// Outcomes:
//   - unknown token → ErrSessionNotFound;
//   - expired session → the stale row is deleted (best effort) and
//     ErrSessionNotFound is returned, indistinguishable from absence;
//   - less than half the TTL left → expiry extended to a full TTL,
//     Session.Refreshed set so the caller re-issues the cookie;
//   - datastore failure → wrapped error, distinct from ErrSessionNotFound
//     so callers can fail closed while logging the real cause.
func (s *sessionService) Validate(ctx context.Context, token string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	session, user, err := s.sessionRepository.FindSessionWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, models.User{}, ErrSessionNotFound
		}

		log.Err(err).Msg("session lookup failed")
		return models.Session{}, models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	now := time.Now()
	if now.After(session.ExpiresAt) {
		// stale row: remove it so the table does not accumulate corpses
		if err := s.sessionRepository.DeleteSession(ctx, session.SessionID); err != nil {
			log.Err(err).Msg("failed to delete expired session")
		}
		return models.Session{}, models.User{}, ErrSessionNotFound
	}

	if session.ExpiresAt.Sub(now) < s.ttl/2 {
		newExpiry := now.Add(s.ttl)
		err := s.sessionRepository.UpdateSessionExpiry(ctx, session.SessionID, newExpiry)
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			// the session vanished mid-request (concurrent logout)
			return models.Session{}, models.User{}, ErrSessionNotFound
		case err != nil:
			// extension is an optimisation; the session itself is still valid
			log.Err(err).Msg("failed to extend session expiry")
		default:
			session.ExpiresAt = newExpiry
			session.Refreshed = true
		}
	}

	return session, user, nil
}

// Invalidate deletes the session record. Subsequent Validate calls with
// the same token return ErrSessionNotFound.
func (s *sessionService) Invalidate(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Msg("session invalidation ended with error")
		return fmt.Errorf("session invalidation ended with error: %w", err)
	}

	return nil
}

// TTL reports the configured session lifetime.
func (s *sessionService) TTL() time.Duration {
	return s.ttl
}
