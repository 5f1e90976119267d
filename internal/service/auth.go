package service

import (
	"context"
	"errors"
	"time"

	"github.com/12keith/spelling-bee-backend/internal/hash"
	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
	"github.com/12keith/spelling-bee-backend/internal/tokens"
)

var (
	ErrMissingFields = errors.New("username and password are required")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = repo.ErrUserAlreadyExists
)

type AuthService struct {
	Repo     *repo.GormRepo
	Secret   []byte
	TokenTTL time.Duration
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || password == "" {
		return ErrMissingFields
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	if _, err := s.Repo.CreateUser(ctx, username, pwHash); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn("register_failed", "status", 400, "reason", "username already exists")
			return ErrUserAlreadyExists
		}
		l.Error("register_error", "status", 500, "error", err)
		return err
	}

	l.Info("register_successful", "username", username)
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		l.Warn("login_failed", "status", 400, "reason", "user not found")
		return nil, ErrInvalidCredentials
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 400, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, exp, err := tokens.Issue(user, s.Secret, s.TokenTTL)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_successful", "username", user.Username)
	return &LoginResult{
		Token:     token,
		ExpiresAt: exp,
		Username:  user.Username,
	}, nil
}

// Authenticate verifies a raw token string and yields the embedded identity.
func (s *AuthService) Authenticate(tokenStr string) (*models.User, error) {
	claims, err := tokens.ClaimsFromToken(tokenStr, s.Secret)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: claims.UserID, Username: claims.Username}, nil
}
