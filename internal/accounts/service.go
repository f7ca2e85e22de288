// Package accounts implements user registration and credential checks.
package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/auth"
	"github.com/nwestra/checkpad/internal/models"
	"github.com/nwestra/checkpad/internal/store"
)

// Service manages user accounts.
type Service struct {
	db *store.DB
}

// NewService creates a new accounts service.
func NewService(db *store.DB) *Service {
	return &Service{db: db}
}

// SignUp creates a new user with a hashed credential. A duplicate email
// yields apperr.ErrAlreadyExists; empty fields yield apperr.ErrValidation.
func (s *Service) SignUp(ctx context.Context, email, name, password string) (*models.User, error) {
	if email == "" || name == "" || password == "" {
		return nil, apperr.ErrValidation
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.db.CreateUser(ctx, email, name, hash)
}

// Authenticate checks email/password credentials and returns the user.
// An unknown email and a wrong password are indistinguishable to the
// caller; both yield apperr.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.ErrUnauthorized
	}
	return user, nil
}
