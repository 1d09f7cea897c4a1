package service

import (
	"context"
	"fmt"
	"strings"

	"courseapi/internal/auth"
	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/validation"
)

// CreateUserInput is the registration payload.
type CreateUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// UserService exposes user operations.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

// CreateUser validates in, hashes the password and stores the user with a
// lowercased email address.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	messages, err := validation.Run(ctx, userRules(s.repo, in))
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, apperrors.Validation(messages)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: strings.ToLower(in.EmailAddress),
		Password:     hashed,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if apperrors.KindOf(err) == apperrors.KindConstraint {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
