package models

import "time"

// Session represents a logged-in browser session. The SessionID is the
// opaque bearer token carried verbatim as the cookie value; anyone holding
// it is the user, so it must be generated from a CSPRNG and never logged.
type Session struct {
	// SessionID is the opaque unguessable token identifying the session.
	// Doubles as the literal cookie value.
	SessionID string `json:"-"`

	// UserID is the owning user. A session always belongs to exactly one user.
	UserID string `json:"userId"`

	// ExpiresAt is the absolute expiry; sessions beyond it are treated as absent.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp when the session was issued.
	CreatedAt time.Time `json:"created_at"`

	// Refreshed reports that a sliding-expiration extension happened during
	// validation and the cookie must be re-issued on the response.
	// Never persisted.
	Refreshed bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
