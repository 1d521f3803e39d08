package service

import "errors"

var (
	// ErrInvalidUsername is returned when a username fails validation:
	// 3–30 characters from [a-z0-9_-] after lowercasing.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned when a password fails validation:
	// 6–255 characters.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidEmail is returned when a non-empty email fails the format check.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidCredentials is returned by Login for BOTH an unknown
	// username and a wrong password. Keeping them indistinguishable
	// prevents username enumeration; the handler maps this to the single
	// client message "Incorrect username or password".
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrValidationTitle is returned when a task title is outside 2–50 characters.
	ErrValidationTitle = errors.New("title must be between 2 and 50 characters")

	// ErrValidationDescription is returned when a task description is
	// outside 2–50 characters.
	ErrValidationDescription = errors.New("description must be between 2 and 50 characters")
)
