package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, a "user_"-prefixed
	// random token assigned at registration time.
	UserID string `json:"userId"`

	// Username is the unique lowercase login identifier.
	// Stored and compared case-normalized.
	Username string `json:"username"`

	// PasswordHash stores the argon2id digest of the user's password in
	// PHC string format. This value MUST be a derived value, never
	// plaintext, and is excluded from JSON.
	PasswordHash string `json:"-"`

	// Email is an optional contact address. It is format-validated at
	// registration but not guaranteed unique.
	Email string `json:"email,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
