package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/groupchat/internal/auth"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
)

// AccountService handles registration and credential verification.
type AccountService struct {
	users *repository.UserRepository
	jwt   *auth.JWTManager
}

func NewAccountService(users *repository.UserRepository, jwt *auth.JWTManager) *AccountService {
	return &AccountService{users: users, jwt: jwt}
}

// Register creates a user with a bcrypt-hashed credential. Fails with
// ErrUserExists when the email is taken and ErrWeakPassword when the password
// does not meet the strength rules.
func (s *AccountService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, newValidationError("Email and password are required")
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if !auth.IsStrongPassword(password) {
		return nil, ErrWeakPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash: %w", err)
	}
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the lookup; the unique
		// constraint settles it.
		if repository.IsUniqueViolation(err, "users_email_key") {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if auth.CheckPassword(user.PasswordHash, password) != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwt.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("account.Login issue token: %w", err)
	}
	return token, nil
}
