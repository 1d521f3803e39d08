package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid form data"}, http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	email := r.PostFormValue("email")

	registeredUser, err := h.services.AuthService.Register(ctx, username, password, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrInvalidPassword),
			errors.Is(err, service.ErrInvalidEmail):
			log.Err(err).Msg("invalid signup data provided")
			writeError(w, err)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Str("username", username).Msg("username already taken")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, err)
			return
		}
	}

	log.Debug().Str("user_id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.SignupResponse{Success: true, UserID: registeredUser.UserID}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid form data"}, http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername), errors.Is(err, service.ErrInvalidPassword):
			log.Err(err).Msg("invalid login data provided")
			writeError(w, err)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("incorrect username or password")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, err)
			return
		}
	}

	session, err := h.services.SessionService.Create(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	http.SetCookie(w, h.sessionCookie(session))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session found in request context")
		writeError(w, service.ErrSessionNotFound)
		return
	}

	if err := h.services.SessionService.Invalidate(ctx, session.SessionID); err != nil {
		log.Err(err).Msg("session invalidation failed")
		writeError(w, err)
		return
	}

	http.SetCookie(w, h.blankSessionCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
