// Package service implements the application logic on top of the store:
// validation, ID assignment, pointer-file upkeep, and reconciliation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/store"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

// UserService manages user accounts.
type UserService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(s store.Store, v *validation.Validator, logger *slog.Logger) *UserService {
	return &UserService{store: s, validator: v, logger: logger}
}

// CreateUserInput carries the fields for creating a user.
type CreateUserInput struct {
	ID       string `json:"id" validate:"required,max=32,handle"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Name     string `json:"name" validate:"required,max=30"`
	LastName string `json:"last_name" validate:"required,max=100"`
}

// Create validates the input and inserts a new user.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:        input.ID,
		Email:     input.Email,
		Name:      input.Name,
		LastName:  input.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user %s: %w", input.ID, err)
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// GetByEmail returns a user by exact email match.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.store.GetUserByEmail(ctx, email)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUserInput carries the updatable fields of a user. Nil fields are
// left unchanged.
type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Name     *string `json:"name" validate:"omitempty,max=30"`
	LastName *string `json:"last_name" validate:"omitempty,max=100"`
}

// Update applies a partial update to an existing user.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	user.Touch()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}

	s.logger.Info("user updated", "user_id", id)
	return user, nil
}

// Delete removes a user and, through the store's cascade, all of the
// user's statuses and pictures. Pointer files stay on disk; a later
// reconcile reports them as orphans.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
