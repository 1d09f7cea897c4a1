package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByID(ctx context.Context, id uint) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser stores user with its email lowercased. A duplicate email is
// reported as a constraint error.
func (r *userRepository) CreateUser(ctx context.Context, user *model.User) error {
	user.EmailAddress = strings.ToLower(user.EmailAddress)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		if IsUniqueViolation(err) {
			return apperrors.Constraint("emailAddress must be unique", err)
		}
		return err
	}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindUserByEmail matches case-insensitively; stored addresses are lowercase.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email_address = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
