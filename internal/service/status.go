package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/errors"
	"github.com/umckinney/social-network-simulator/internal/store"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

// StatusService manages status updates.
type StatusService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewStatusService creates a new status service.
func NewStatusService(s store.Store, v *validation.Validator, logger *slog.Logger) *StatusService {
	return &StatusService{store: s, validator: v, logger: logger}
}

// CreateStatusInput carries the fields for creating a status update.
type CreateStatusInput struct {
	ID     string `json:"id" validate:"required,max=32,handle"`
	UserID string `json:"user_id" validate:"required,max=32,handle"`
	Text   string `json:"text" validate:"required,max=140"`
}

// Create validates the input and inserts a new status. The referenced
// user must exist.
func (s *StatusService) Create(ctx context.Context, input CreateStatusInput) (*domain.Status, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("user %s not found", input.UserID)
		}
		return nil, err
	}

	now := time.Now()
	status := &domain.Status{
		ID:        input.ID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("creating status %s: %w", input.ID, err)
	}

	s.logger.Info("status created", "status_id", status.ID, "user_id", status.UserID)
	return status, nil
}

// Get returns a status by ID.
func (s *StatusService) Get(ctx context.Context, id string) (*domain.Status, error) {
	return s.store.GetStatus(ctx, id)
}

// List returns all statuses.
func (s *StatusService) List(ctx context.Context) ([]*domain.Status, error) {
	return s.store.ListStatuses(ctx)
}

// ListByUser returns all statuses posted by the given user.
func (s *StatusService) ListByUser(ctx context.Context, userID string) ([]*domain.Status, error) {
	return s.store.ListStatusesByUser(ctx, userID)
}

// UpdateStatusInput carries the updatable fields of a status.
type UpdateStatusInput struct {
	Text *string `json:"text" validate:"omitempty,max=140"`
}

// Update applies a partial update to an existing status.
func (s *StatusService) Update(ctx context.Context, id string, input UpdateStatusInput) (*domain.Status, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	status, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		status.Text = *input.Text
	}
	status.Touch()

	if err := s.store.UpdateStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("updating status %s: %w", id, err)
	}

	s.logger.Info("status updated", "status_id", id)
	return status, nil
}

// Delete removes a status.
func (s *StatusService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteStatus(ctx, id); err != nil {
		return err
	}
	s.logger.Info("status deleted", "status_id", id)
	return nil
}
