package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidUsername:       http.StatusBadRequest,
	service.ErrInvalidPassword:       http.StatusBadRequest,
	service.ErrInvalidEmail:          http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusBadRequest,
	service.ErrValidationTitle:       http.StatusBadRequest,
	service.ErrValidationDescription: http.StatusBadRequest,

	service.ErrSessionNotFound: http.StatusUnauthorized,

	store.ErrUsernameTaken: http.StatusBadRequest,
	store.ErrUserNotFound:  http.StatusBadRequest,
	store.ErrTaskNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text for every error that is safe
// to expose. Anything not listed here is reported as a generic internal error
// so that storage details never leak to the browser.
var errorMessageMap = map[error]string{
	service.ErrInvalidUsername:       "Invalid username",
	service.ErrInvalidPassword:       "Invalid password",
	service.ErrInvalidEmail:          "Invalid email",
	service.ErrInvalidCredentials:    "Incorrect username or password",
	service.ErrValidationTitle:       "Title must be between 2 and 50 characters",
	service.ErrValidationDescription: "Description must be between 2 and 50 characters",

	service.ErrSessionNotFound: "Unauthorized",

	store.ErrUsernameTaken: "Username already taken",
	store.ErrTaskNotFound:  "Task not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Internal server error"
}

// writeError maps err to an HTTP status and a client-safe message and writes
// them as a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}

