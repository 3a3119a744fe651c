package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/umckinney/social-network-simulator/internal/domain"
	"github.com/umckinney/social-network-simulator/internal/store"
)

func mustCreateStatus(t *testing.T, s *Store, id, userID string) *domain.Status {
	t.Helper()
	now := time.Now()
	st := &domain.Status{
		ID:        id,
		UserID:    userID,
		Text:      "hello world",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateStatus(context.Background(), st); err != nil {
		t.Fatalf("create status %s: %v", id, err)
	}
	return st
}

func TestCreateGetStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "alice")
	st := mustCreateStatus(t, s, "st_1", "alice")

	got, err := s.GetStatus(ctx, "st_1")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if got.UserID != st.UserID || got.Text != st.Text {
		t.Errorf("got %+v, want %+v", got, st)
	}
}

func TestCreateStatus_Duplicate(t *testing.T) {
	s := newTestStore(t)

	mustCreateUser(t, s, "alice")
	st := mustCreateStatus(t, s, "st_1", "alice")

	err := s.CreateStatus(context.Background(), st)
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateStatus_UnknownUser(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	err := s.CreateStatus(context.Background(), &domain.Status{
		ID:        "st_1",
		UserID:    "ghost",
		Text:      "orphan",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing user, got %v", err)
	}
}

func TestListStatusesByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "alice")
	mustCreateUser(t, s, "bob")
	mustCreateStatus(t, s, "st_1", "alice")
	mustCreateStatus(t, s, "st_2", "alice")
	mustCreateStatus(t, s, "st_3", "bob")

	statuses, err := s.ListStatusesByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list statuses: %v", err)
	}
	if len(statuses) != 2 {
		t.Errorf("expected 2 statuses for alice, got %d", len(statuses))
	}

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("list all statuses: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 statuses total, got %d", len(all))
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "alice")
	st := mustCreateStatus(t, s, "st_1", "alice")

	st.Text = "updated text"
	st.Touch()
	if err := s.UpdateStatus(ctx, st); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := s.GetStatus(ctx, "st_1")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if got.Text != "updated text" {
		t.Errorf("expected updated text, got %q", got.Text)
	}
}

func TestDeleteStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "alice")
	mustCreateStatus(t, s, "st_1", "alice")

	if err := s.DeleteStatus(ctx, "st_1"); err != nil {
		t.Fatalf("delete status: %v", err)
	}
	if err := s.DeleteStatus(ctx, "st_1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
