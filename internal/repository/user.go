// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	observability.StoreOperations.WithLabelValues("users", "add").Inc()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		observability.StoreErrors.WithLabelValues("users", "add").Inc()
		if isUniqueConstraintError(err) {
			return models.NewDuplicateUserError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or nil when absent.
// Absence is not an error.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	observability.StoreOperations.WithLabelValues("users", "get").Inc()
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		observability.StoreErrors.WithLabelValues("users", "get").Inc()
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	observability.StoreOperations.WithLabelValues("users", "get").Inc()
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		observability.StoreErrors.WithLabelValues("users", "get").Inc()
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// VerifyCredentials reports whether a user with exactly this email/password
// pair exists. It never distinguishes an unknown email from a wrong password.
func (r *userRepository) VerifyCredentials(ctx context.Context, email, password string) (bool, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Password == password, nil
}

// isUniqueConstraintError checks if a DB error is a unique-index violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// SQLite reports "UNIQUE constraint failed: table.column"
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}
