// Package service implements the application's user-facing operations on top
// of the repositories, the session holder, and the feed synchronizer.
package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/session"
)

// AccountService handles signup, login, and logout.
type AccountService struct {
	users    repository.UserRepository
	sessions *session.Holder
}

// SignupInput is the signup form payload.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// NewAccountService creates an AccountService.
func NewAccountService(users repository.UserRepository, sessions *session.Holder) *AccountService {
	return &AccountService{users: users, sessions: sessions}
}

// Signup creates a new account. A unique-index collision on either email or
// username surfaces as DuplicateUser with no partial record persisted.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, models.NewValidationError("A valid email is required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("Password is required")
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credential pair and, on success, persists the user's
// identity in the session slot. The error message never reveals which of
// email or password was wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	ok, err := s.users.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewValidationError("Invalid credentials")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The user vanished between verify and fetch; treat as a bad login.
		return nil, models.NewValidationError("Invalid credentials")
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, err
	}
	id := user.Public()
	return &id, nil
}

// Logout clears the session slot.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}
