package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// sessionCookieName is the name under which the opaque session token
// travels between the browser and the server.
const sessionCookieName = "session"

// sessionCookie builds the cookie carrying the session token. The cookie is
// HttpOnly so it is never visible to client-side scripts, and its lifetime
// matches the session's expiry exactly.
func (h *Handler) sessionCookie(session models.Session) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	}
}

// blankSessionCookie builds a cookie that instructs the browser to drop the
// stored session token immediately. Issued on logout and whenever a stale
// token is detected.
func (h *Handler) blankSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
