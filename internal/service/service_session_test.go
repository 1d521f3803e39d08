package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn       func(ctx context.Context, session models.Session) (models.Session, error)
	findSessionWithUserFn func(ctx context.Context, sessionID string) (models.Session, models.User, error)
	updateSessionExpiryFn func(ctx context.Context, sessionID string, expiresAt time.Time) error
	deleteSessionFn       func(ctx context.Context, sessionID string) error
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return session, nil
}

func (m *mockSessionRepository) FindSessionWithUser(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	if m.findSessionWithUserFn != nil {
		return m.findSessionWithUserFn(ctx, sessionID)
	}
	return models.Session{}, models.User{}, store.ErrSessionNotFound
}

func (m *mockSessionRepository) UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	if m.updateSessionExpiryFn != nil {
		return m.updateSessionExpiryFn(ctx, sessionID, expiresAt)
	}
	return nil
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(ctx, sessionID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

const testTTL = 720 * time.Hour

func newSessionServiceWithMock(repo *mockSessionRepository) SessionService {
	return &sessionService{
		sessionRepository: repo,
		ttl:               testTTL,
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestSessionService_Create_Success(t *testing.T) {
	var savedSession models.Session
	repo := &mockSessionRepository{
		createSessionFn: func(_ context.Context, session models.Session) (models.Session, error) {
			savedSession = session
			return session, nil
		},
	}
	svc := newSessionServiceWithMock(repo)

	session, err := svc.Create(context.Background(), "user_1")

	require.NoError(t, err)
	assert.Equal(t, "user_1", session.UserID)
	assert.Len(t, session.SessionID, 52)
	assert.Equal(t, savedSession.SessionID, session.SessionID)

	// issued with a full TTL
	assert.WithinDuration(t, time.Now().Add(testTTL), session.ExpiresAt, time.Minute)
}

func TestSessionService_Create_UniqueTokens(t *testing.T) {
	svc := newSessionServiceWithMock(&mockSessionRepository{})

	first, err := svc.Create(context.Background(), "user_1")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "user_1")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestSessionService_Create_StorageError(t *testing.T) {
	repo := &mockSessionRepository{
		createSessionFn: func(_ context.Context, _ models.Session) (models.Session, error) {
			return models.Session{}, errStorage
		},
	}
	svc := newSessionServiceWithMock(repo)

	_, err := svc.Create(context.Background(), "user_1")

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestSessionService_Validate_FreshSession(t *testing.T) {
	expiresAt := time.Now().Add(testTTL)
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, sessionID string) (models.Session, models.User, error) {
			assert.Equal(t, "token-1", sessionID)
			return models.Session{SessionID: "token-1", UserID: "user_1", ExpiresAt: expiresAt},
				models.User{UserID: "user_1", Username: "alice"}, nil
		},
	}
	svc := newSessionServiceWithMock(repo)

	session, user, err := svc.Validate(context.Background(), "token-1")

	require.NoError(t, err)
	assert.Equal(t, "user_1", user.UserID)
	assert.False(t, session.Refreshed, "fresh session must not be extended")
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestSessionService_Validate_UnknownToken(t *testing.T) {
	svc := newSessionServiceWithMock(&mockSessionRepository{})

	_, _, err := svc.Validate(context.Background(), "unknown")

	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Validate_ExpiredSessionIsDeleted(t *testing.T) {
	deletedSessionID := ""
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, _ string) (models.Session, models.User, error) {
			return models.Session{SessionID: "token-1", UserID: "user_1", ExpiresAt: time.Now().Add(-time.Hour)},
				models.User{UserID: "user_1"}, nil
		},
		deleteSessionFn: func(_ context.Context, sessionID string) error {
			deletedSessionID = sessionID
			return nil
		},
	}
	svc := newSessionServiceWithMock(repo)

	_, _, err := svc.Validate(context.Background(), "token-1")

	require.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, "token-1", deletedSessionID)
}

func TestSessionService_Validate_ExtendsExpiryPastHalfLife(t *testing.T) {
	var extendedTo time.Time
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, _ string) (models.Session, models.User, error) {
			// less than half the TTL remains
			return models.Session{SessionID: "token-1", UserID: "user_1", ExpiresAt: time.Now().Add(testTTL/2 - time.Hour)},
				models.User{UserID: "user_1"}, nil
		},
		updateSessionExpiryFn: func(_ context.Context, sessionID string, expiresAt time.Time) error {
			assert.Equal(t, "token-1", sessionID)
			extendedTo = expiresAt
			return nil
		},
	}
	svc := newSessionServiceWithMock(repo)

	session, _, err := svc.Validate(context.Background(), "token-1")

	require.NoError(t, err)
	assert.True(t, session.Refreshed, "extended session must be flagged for cookie re-issue")
	assert.Equal(t, extendedTo, session.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(testTTL), session.ExpiresAt, time.Minute)
}

func TestSessionService_Validate_ExtensionRaceWithLogout(t *testing.T) {
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, _ string) (models.Session, models.User, error) {
			return models.Session{SessionID: "token-1", UserID: "user_1", ExpiresAt: time.Now().Add(time.Hour)},
				models.User{UserID: "user_1"}, nil
		},
		updateSessionExpiryFn: func(_ context.Context, _ string, _ time.Time) error {
			return store.ErrSessionNotFound
		},
	}
	svc := newSessionServiceWithMock(repo)

	_, _, err := svc.Validate(context.Background(), "token-1")

	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Validate_ExtensionFailureKeepsSessionValid(t *testing.T) {
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, _ string) (models.Session, models.User, error) {
			return models.Session{SessionID: "token-1", UserID: "user_1", ExpiresAt: time.Now().Add(time.Hour)},
				models.User{UserID: "user_1"}, nil
		},
		updateSessionExpiryFn: func(_ context.Context, _ string, _ time.Time) error {
			return errStorage
		},
	}
	svc := newSessionServiceWithMock(repo)

	session, user, err := svc.Validate(context.Background(), "token-1")

	require.NoError(t, err)
	assert.Equal(t, "user_1", user.UserID)
	assert.False(t, session.Refreshed)
}

func TestSessionService_Validate_StorageError(t *testing.T) {
	repo := &mockSessionRepository{
		findSessionWithUserFn: func(_ context.Context, _ string) (models.Session, models.User, error) {
			return models.Session{}, models.User{}, errStorage
		},
	}
	svc := newSessionServiceWithMock(repo)

	_, _, err := svc.Validate(context.Background(), "token-1")

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

// ─────────────────────────────────────────────
// Invalidate
// ─────────────────────────────────────────────

func TestSessionService_Invalidate_Success(t *testing.T) {
	deletedSessionID := ""
	repo := &mockSessionRepository{
		deleteSessionFn: func(_ context.Context, sessionID string) error {
			deletedSessionID = sessionID
			return nil
		},
	}
	svc := newSessionServiceWithMock(repo)

	err := svc.Invalidate(context.Background(), "token-1")

	require.NoError(t, err)
	assert.Equal(t, "token-1", deletedSessionID)
}

func TestSessionService_Invalidate_StorageError(t *testing.T) {
	repo := &mockSessionRepository{
		deleteSessionFn: func(_ context.Context, _ string) error {
			return errStorage
		},
	}
	svc := newSessionServiceWithMock(repo)

	err := svc.Invalidate(context.Background(), "token-1")

	require.ErrorIs(t, err, errStorage)
}

func TestSessionService_TTL(t *testing.T) {
	svc := newSessionServiceWithMock(&mockSessionRepository{})

	assert.Equal(t, testTTL, svc.TTL())
}
