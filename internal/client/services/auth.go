package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/logging"
)

// Client-side credential validation errors. The messages match the error
// text the backend's frontend conventions established, so they can be
// shown to the user as-is.
var (
	ErrUsernameRequired = errors.New("username is a required field")
	ErrUsernameTooShort = errors.New("username must be at least 6 characters")
	ErrPasswordRequired = errors.New("password is a required field")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

const minCredentialLength = 6

// SessionStore persists the session across runs. Satisfied by
// *session.Store.
type SessionStore interface {
	Save(models.Session) error
	Clear() error
}

// AuthService handles login, registration and logout. Credential
// validation happens locally first; invalid input never reaches the
// backend.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, username, password, confirmPassword string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  SessionStore
	log    logging.Logger
}

func NewAuthService(client api.Client, store SessionStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login authenticates against the backend and persists the resulting
// session. Backend rejections (wrong password etc.) surface their message
// verbatim as an *api.ValidationError.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	if strings.TrimSpace(username) == "" {
		return models.Session{}, ErrUsernameRequired
	}
	if password == "" {
		return models.Session{}, ErrPasswordRequired
	}

	sess, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	if err := a.store.Save(*sess); err != nil {
		// The login itself succeeded; losing persistence only costs the
		// user a re-login next run.
		a.log.Warn(ctx, "could not persist session", "error", err)
	}
	a.log.Info(ctx, "logged in", "username", sess.Username)
	return *sess, nil
}

// Register creates a new account. Rules: username and password required
// and at least 6 characters, passwords must match.
func (a *authService) Register(ctx context.Context, username, password, confirmPassword string) error {
	if err := validateRegistration(username, password, confirmPassword); err != nil {
		return err
	}
	if err := a.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "registered", "username", username)
	return nil
}

// Logout wipes the persisted session. The token is opaque to the client;
// there is nothing to revoke server-side.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func validateRegistration(username, password, confirmPassword string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return ErrUsernameRequired
	case len(username) < minCredentialLength:
		return ErrUsernameTooShort
	case password == "":
		return ErrPasswordRequired
	case len(password) < minCredentialLength:
		return ErrPasswordTooShort
	case password != confirmPassword:
		return ErrPasswordMismatch
	}
	return nil
}
