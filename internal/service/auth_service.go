package service

import (
	"context"
	"errors"
	"fmt"

	"courseapi/internal/auth"
	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
	"courseapi/internal/repository"
)

// Authentication failure reasons reported to the client.
const (
	ReasonNoAuthorization   = "No Authorization header found."
	ReasonIncorrectPassword = "Incorrect password."
)

// AuthService resolves Basic credentials to a stored user.
type AuthService interface {
	Authenticate(ctx context.Context, creds auth.Credentials) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher) AuthService {
	return &authService{users: users, hasher: hasher}
}

// Authenticate returns the user named by creds.Name when creds.Pass matches the
// stored hash. Rejections are Unauthenticated errors carrying the reason.
func (s *authService) Authenticate(ctx context.Context, creds auth.Credentials) (*model.User, error) {
	user, err := s.users.FindUserByEmail(ctx, creds.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthenticated(fmt.Sprintf("User %s not found.", creds.Name))
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Verify(user.Password, creds.Pass); err != nil {
		return nil, apperrors.Unauthenticated(ReasonIncorrectPassword)
	}
	return user, nil
}
