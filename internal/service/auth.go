package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quirknotes/server/internal/logger"
	"github.com/quirknotes/server/internal/model"
)

// Auth implements user registration and login. Both operations mint a
// session token on success; registration and login are the only paths that
// bypass the auth gateway.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a new user and returns a session token for it.
func (a *Auth) Register(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	if username == "" || password == "" {
		return "", model.NewValidationError("Username and password both needed to register.")
	}

	_, err := a.userStore.GetByUsername(ctx, username)
	if err == nil {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return "", model.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// The store enforces uniqueness again with a conditional write, closing
	// the window between the check above and the insert.
	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return "", model.ErrUsernameTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokens.Generate(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username)

	return tokenString, nil
}

// Login verifies credentials and returns a session token. An unknown
// username and a wrong password produce the same error.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	if username == "" || password == "" {
		return "", model.NewValidationError("Username and password both needed to login.")
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	ok, err := a.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return "", model.ErrInvalidCredentials
	}

	tokenString, err := a.tokens.Generate(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username)

	return tokenString, nil
}
