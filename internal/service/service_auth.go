package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Credential validation bounds. The username charset is fixed: accounts
// are addressed case-insensitively by lowercasing before both storage and
// lookup.
const (
	usernameMinLength = 3
	usernameMaxLength = 30
	passwordMinLength = 6
	passwordMaxLength = 255
)

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator supplies the random part of new user identifiers.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The username is lowercased before validation so that usernames differing
// only in case collide on the same account. Validation happens before any
// datastore call; the password is hashed with argon2id and only the digest
// is persisted.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidUsername / ErrInvalidPassword / ErrInvalidEmail on
//     validation failure.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.ToLower(username)
	if err := validateCredentials(username, password); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid user data provided")
		return models.User{}, err
	}
	if email != "" && !emailPattern.MatchString(email) {
		log.Error().Str("username", username).Msg("invalid email provided")
		return models.User{}, ErrInvalidEmail
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuidGenerator.GenerateUserID(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It lowercases the username, validates both credentials, looks up the
// account and verifies the password against the stored argon2id digest.
//
// An unknown username and a wrong password both return
// ErrInvalidCredentials: the two cases must stay indistinguishable to the
// caller. Storage failures other than "not found" are wrapped and
// propagated so the handler can answer 500 instead of 400.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.ToLower(username)
	if err := validateCredentials(username, password); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid user data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Debug().Str("username", username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// validateCredentials applies the username and password bounds shared by
// signup and login.
func validateCredentials(username, password string) error {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength || !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		return ErrInvalidPassword
	}

	return nil
}
