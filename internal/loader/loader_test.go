package loader

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/service"
	"github.com/umckinney/social-network-simulator/internal/store/sqlite"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

func newTestLoader(t *testing.T) (*Loader, *service.UserService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dir := t.TempDir()
	s, err := sqlite.Open(filepath.Join(dir, "test.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	writer := pointer.NewWriter(filepath.Join(dir, "picture_storage"), logger)
	reconciler := reconcile.New(s, writer, logger)
	validator := validation.New()

	users := service.NewUserService(s, validator, logger)
	statuses := service.NewStatusService(s, validator, logger)
	pictures := service.NewPictureService(s, validator, writer, reconciler, logger)

	return New(users, statuses, pictures, logger), users
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadUsers(t *testing.T) {
	l, users := newTestLoader(t)
	ctx := context.Background()

	path := writeCSV(t, "USER_ID,EMAIL,NAME,LASTNAME\n"+
		"alice,alice@example.com,Alice,Smith\n"+
		"bob,bob@example.com,Bob,Jones\n")

	sum, err := l.LoadUsers(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sum.Inserted != 2 || sum.Skipped != 0 {
		t.Errorf("expected 2 inserted, got %+v", sum)
	}

	all, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 users, got %d", len(all))
	}
}

func TestLoadUsers_SkipsEmptyAndDuplicateRows(t *testing.T) {
	l, _ := newTestLoader(t)

	path := writeCSV(t, "USER_ID,EMAIL,NAME,LASTNAME\n"+
		"alice,alice@example.com,Alice,Smith\n"+
		"bob,,Bob,Jones\n"+
		"alice,other@example.com,Alice,Again\n")

	sum, err := l.LoadUsers(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sum.Inserted != 1 || sum.Skipped != 2 {
		t.Errorf("expected 1 inserted 2 skipped, got %+v", sum)
	}
}

func TestLoadUsers_MissingColumn(t *testing.T) {
	l, _ := newTestLoader(t)

	path := writeCSV(t, "USER_ID,EMAIL,NAME\nalice,alice@example.com,Alice\n")

	if _, err := l.LoadUsers(context.Background(), path); err == nil {
		t.Error("expected error for missing LASTNAME column")
	}
}

func TestLoadUsers_MissingFile(t *testing.T) {
	l, _ := newTestLoader(t)

	if _, err := l.LoadUsers(context.Background(), "no_such_file.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadStatuses_SkipsUnknownUsers(t *testing.T) {
	l, _ := newTestLoader(t)
	ctx := context.Background()

	usersCSV := writeCSV(t, "USER_ID,EMAIL,NAME,LASTNAME\nalice,alice@example.com,Alice,Smith\n")
	if _, err := l.LoadUsers(ctx, usersCSV); err != nil {
		t.Fatalf("load users: %v", err)
	}

	path := writeCSV(t, "STATUS_ID,USER_ID,STATUS_TEXT\n"+
		"st_1,alice,hello\n"+
		"st_2,ghost,orphan\n")

	sum, err := l.LoadStatuses(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sum.Inserted != 1 || sum.Skipped != 1 {
		t.Errorf("expected 1 inserted 1 skipped, got %+v", sum)
	}
}

func TestLoadPictures(t *testing.T) {
	l, _ := newTestLoader(t)
	ctx := context.Background()

	usersCSV := writeCSV(t, "USER_ID,EMAIL,NAME,LASTNAME\nalice,alice@example.com,Alice,Smith\n")
	if _, err := l.LoadUsers(ctx, usersCSV); err != nil {
		t.Fatalf("load users: %v", err)
	}

	path := writeCSV(t, "PICTURE_ID,USER_ID,TAGS\n"+
		"pic_1,alice,#cats #dogs\n")

	sum, err := l.LoadPictures(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sum.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %+v", sum)
	}
}

func TestLoad_ColumnOrderDoesNotMatter(t *testing.T) {
	l, _ := newTestLoader(t)

	path := writeCSV(t, "NAME,USER_ID,LASTNAME,EMAIL\n"+
		"Alice,alice,Smith,alice@example.com\n")

	sum, err := l.LoadUsers(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sum.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %+v", sum)
	}
}
