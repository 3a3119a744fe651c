package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/store/sqlite"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

type testServices struct {
	users    *UserService
	statuses *StatusService
	pictures *PictureService
	root     string
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dir := t.TempDir()
	s, err := sqlite.Open(filepath.Join(dir, "test.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	root := filepath.Join(dir, "picture_storage")
	writer := pointer.NewWriter(root, logger)
	reconciler := reconcile.New(s, writer, logger)
	validator := validation.New()

	return &testServices{
		users:    NewUserService(s, validator, logger),
		statuses: NewStatusService(s, validator, logger),
		pictures: NewPictureService(s, validator, writer, reconciler, logger),
		root:     root,
	}
}

func (ts *testServices) mustCreateUser(t *testing.T, id string) {
	t.Helper()
	_, err := ts.users.Create(context.Background(), CreateUserInput{
		ID:       id,
		Email:    id + "@example.com",
		Name:     "Test",
		LastName: "User",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", id, err)
	}
}

func strPtr(s string) *string { return &s }
