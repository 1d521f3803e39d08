package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, validates the opaque token via
// [service.SessionService.Validate], and — on success — stores the
// authenticated user's ID and the session itself in the request context under
// [utils.UserIDCtxKey] and [utils.SessionCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - No session cookie is present ([ErrNoSessionCookie]).
//   - The cookie value is empty ([ErrEmptySessionToken]).
//   - The token is unknown or the session has expired
//     ([service.ErrSessionNotFound]); a blank cookie is issued so the
//     browser drops the stale token.
//   - Session lookup fails for any other reason. The request is treated as
//     unauthenticated rather than letting an unverified caller through.
//
// When the validated session was extended, the middleware re-issues the
// cookie so the browser picks up the new expiry.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, service.ErrSessionNotFound)
			return
		}

		ctx := r.Context()
		session, user, err := h.services.SessionService.Validate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionNotFound):
				log.Err(err).Msg("session expired or unknown")
				http.SetCookie(w, h.blankSessionCookie())
				writeError(w, service.ErrSessionNotFound)
				return
			default:
				log.Err(err).Msg("error occurred during session validation")
				writeError(w, service.ErrSessionNotFound)
				return
			}
		}

		if session.Refreshed {
			http.SetCookie(w, h.sessionCookie(session))
		}

		// Store the authenticated user's ID and the session in the context so
		// that downstream handlers can use them without a second lookup.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the opaque session token from the request's
// session cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the request carries no session cookie.
//   - [ErrEmptySessionToken] — if the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}
