// Package auth registers users, checks their credentials and issues the
// bearer tokens that guard write endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
)

const invalidCredentials = "Invalid credentials. Please double-check your email and password."

type Registration struct {
	FullName        string
	Email           string
	Password        string
	PreferredTopics []string
}

type Service struct {
	users  storage.UserStorer
	hasher PasswordHasher
	tokens *Tokens
}

func NewService(users storage.UserStorer, hasher PasswordHasher, tokens *Tokens) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register stores a new user with a hashed password. Input is expected to be
// validated by the caller.
func (s *Service) Register(ctx context.Context, r Registration) (*domain.User, error) {
	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		FullName:        strings.TrimSpace(r.FullName),
		Email:           normalizeEmail(r.Email),
		PasswordHash:    hash,
		PreferredTopics: r.PreferredTopics,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperr.NewConflict("email is already registered", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	slog.Info("User registered", "id", id)
	return &user, nil
}

// Login returns a signed token. Unknown emails and wrong passwords fail with
// the same error.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperr.NewAuth(invalidCredentials, "unknown email")
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", apperr.NewAuth(invalidCredentials, "password mismatch")
	}

	return s.tokens.Issue(user.ID, user.FullName, user.PreferredTopics)
}

// Verify exposes token checks to the transport layer.
func (s *Service) Verify(token string) Verification {
	return s.tokens.Verify(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
