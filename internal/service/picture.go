package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/errors"
	"github.com/umckinney/social-network-simulator/internal/id"
	"github.com/umckinney/social-network-simulator/internal/normalize"
	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/store"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

// PictureService manages picture records and their on-disk pointer files.
type PictureService struct {
	store      store.Store
	validator  *validation.Validator
	writer     *pointer.Writer
	reconciler *reconcile.Reconciler
	logger     *slog.Logger
}

// NewPictureService creates a new picture service.
func NewPictureService(
	s store.Store,
	v *validation.Validator,
	w *pointer.Writer,
	r *reconcile.Reconciler,
	logger *slog.Logger,
) *PictureService {
	return &PictureService{store: s, validator: v, writer: w, reconciler: r, logger: logger}
}

// CreatePictureInput carries the fields for creating a picture record.
// ID is optional; a word-safe one is generated when absent. Tags is the
// raw "#"-delimited string as typed by the user.
type CreatePictureInput struct {
	ID     string `json:"id" validate:"omitempty,max=32,handle"`
	UserID string `json:"user_id" validate:"required,max=32,handle"`
	Tags   string `json:"tags" validate:"max=100"`
}

// Create validates the input, normalizes tags, inserts the record, and
// writes its pointer file. A pointer-file failure does not fail the
// create; the record is the source of truth and reconciliation recovers
// the file later.
func (s *PictureService) Create(ctx context.Context, input CreatePictureInput) (*domain.Picture, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("user %s not found", input.UserID)
		}
		return nil, err
	}

	pictureID := input.ID
	if pictureID == "" {
		generated, err := id.Generate("pic")
		if err != nil {
			return nil, fmt.Errorf("generating picture id: %w", err)
		}
		pictureID = generated
	}

	now := time.Now()
	picture := &domain.Picture{
		ID:        pictureID,
		UserID:    input.UserID,
		Tags:      normalize.Tags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreatePicture(ctx, picture); err != nil {
		return nil, fmt.Errorf("creating picture %s: %w", pictureID, err)
	}

	if !s.writer.Create(picture) {
		s.logger.Warn("pointer file not written, reconcile will report it",
			"picture_id", picture.ID)
	}

	s.logger.Info("picture created",
		"picture_id", picture.ID, "user_id", picture.UserID, "file_name", picture.FileName)
	return picture, nil
}

// Get returns a picture by ID.
func (s *PictureService) Get(ctx context.Context, id string) (*domain.Picture, error) {
	return s.store.GetPicture(ctx, id)
}

// List returns all pictures.
func (s *PictureService) List(ctx context.Context) ([]*domain.Picture, error) {
	return s.store.ListPictures(ctx)
}

// ListByUser returns all pictures posted by the given user.
func (s *PictureService) ListByUser(ctx context.Context, userID string) ([]*domain.Picture, error) {
	return s.store.ListPicturesByUser(ctx, userID)
}

// UpdatePictureInput carries the updatable fields of a picture. Tags is
// the raw "#"-delimited replacement string.
type UpdatePictureInput struct {
	Tags *string `json:"tags" validate:"omitempty,max=100"`
}

// Update applies a partial update to an existing picture and rewrites
// its pointer file, since a tag change moves the file's directory.
func (s *PictureService) Update(ctx context.Context, pictureID string, input UpdatePictureInput) (*domain.Picture, error) {
	if err := s.validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	picture, err := s.store.GetPicture(ctx, pictureID)
	if err != nil {
		return nil, err
	}

	if input.Tags != nil {
		picture.Tags = normalize.Tags(*input.Tags)
	}
	picture.Touch()

	if err := s.store.UpdatePicture(ctx, picture); err != nil {
		return nil, fmt.Errorf("updating picture %s: %w", pictureID, err)
	}

	if !s.writer.Create(picture) {
		s.logger.Warn("pointer file not rewritten after update", "picture_id", picture.ID)
	}

	s.logger.Info("picture updated", "picture_id", pictureID)
	return picture, nil
}

// Delete removes a picture record. The pointer file is left in place
// and shows up as an on-disk orphan in the next reconcile.
func (s *PictureService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePicture(ctx, id); err != nil {
		return err
	}
	s.logger.Info("picture deleted", "picture_id", id)
	return nil
}

// Reconcile compares database records and pointer files for one user,
// or for all users when userID is empty.
func (s *PictureService) Reconcile(ctx context.Context, userID string) (map[string]reconcile.Result, error) {
	return s.reconciler.Run(ctx, userID)
}

// Backfill writes missing pointer files for the given picture IDs and
// returns how many were written.
func (s *PictureService) Backfill(ctx context.Context, userID string, pictureIDs []string) (int, error) {
	return s.reconciler.Backfill(ctx, userID, pictureIDs)
}
