package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"eventboard-backend/internal/auth"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

// MinPasswordLength applies to signup and password reset.
const MinPasswordLength = 6

type AuthService struct {
	users  ports.UserRepository
	tokens *auth.JWTManager
}

func NewAuthService(users ports.UserRepository, tokens *auth.JWTManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidSignup
	}
	if len(password) < MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("user signed up", zap.String("user_id", user.ID))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.Session{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

func (s *AuthService) Authenticate(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrMissingToken
	}
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

// ResetPassword overwrites the password of the account registered under
// email. There is no proof of ownership; callers are trusted.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return domain.ErrWeakPassword
	}

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrEmailNotFound
	}
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	zap.L().Info("password reset", zap.String("user_id", user.ID))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)
