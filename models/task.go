package models

import "time"

// Task is a single to-do item owned by exactly one user. A task is only
// visible to, and mutable by, its owning user; every repository query is
// scoped by UserID.
type Task struct {
	// TaskID is the server-assigned unique identifier.
	TaskID int64 `json:"id"`

	// Title is a short free-text summary.
	Title string `json:"title"`

	// Description is longer free text.
	Description string `json:"description"`

	// Completed marks the task as done. Defaults to false at creation.
	Completed bool `json:"completed"`

	// CreatedAt is set at creation and never updated afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UserID is the owning user. Excluded from JSON: the API is always
	// called in the owner's own session, so echoing it leaks nothing useful.
	UserID string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
