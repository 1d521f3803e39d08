package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same (case-normalized) username already
	// exists. The users.username UNIQUE constraint is the authoritative
	// guard; this error surfaces its violation.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a lookup by username or id matches
	// no user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session token matches no stored
	// session, or the stored session has already expired. Callers must
	// treat both identically: the request is unauthenticated.
	ErrSessionNotFound = errors.New("no session was found")

	// ErrTaskNotFound is returned when a task query scoped by user_id
	// affects zero rows. An owner mismatch is deliberately
	// indistinguishable from a nonexistent task.
	ErrTaskNotFound = errors.New("task was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
