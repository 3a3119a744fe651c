// Package store defines the persistence interface for the social network
// record keeper and the sentinel errors stores return.
package store

import (
	"context"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/errors"
)

// Sentinel errors returned by store implementations. They carry domain
// error codes so handlers can map them straight to HTTP statuses.
var (
	ErrNotFound      = errors.NotFound("record not found")
	ErrAlreadyExists = errors.AlreadyExists("record already exists")
)

// Store is the persistence interface for users, statuses, and pictures.
type Store interface {
	UserStore
	StatusStore
	PictureStore

	Close() error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	// DeleteUser removes a user and, via foreign keys, all of the user's
	// statuses and pictures.
	DeleteUser(ctx context.Context, id string) error
}

// StatusStore persists status updates.
type StatusStore interface {
	CreateStatus(ctx context.Context, status *domain.Status) error
	GetStatus(ctx context.Context, id string) (*domain.Status, error)
	ListStatuses(ctx context.Context) ([]*domain.Status, error)
	ListStatusesByUser(ctx context.Context, userID string) ([]*domain.Status, error)
	UpdateStatus(ctx context.Context, status *domain.Status) error
	DeleteStatus(ctx context.Context, id string) error
}

// PictureStore persists picture records.
type PictureStore interface {
	// CreatePicture inserts the record and populates Seq and FileName
	// from the assigned row number.
	CreatePicture(ctx context.Context, picture *domain.Picture) error
	GetPicture(ctx context.Context, id string) (*domain.Picture, error)
	ListPictures(ctx context.Context) ([]*domain.Picture, error)
	ListPicturesByUser(ctx context.Context, userID string) ([]*domain.Picture, error)
	UpdatePicture(ctx context.Context, picture *domain.Picture) error
	DeletePicture(ctx context.Context, id string) error
}
