package api

import (
	"context"
	"github.com/go-json-experiment/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/umckinney/social-network-simulator/internal/http/response"
	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/ratelimit"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/service"
	"github.com/umckinney/social-network-simulator/internal/store/sqlite"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

type testEnv struct {
	server   *Server
	users    *service.UserService
	statuses *service.StatusService
	pictures *service.PictureService
}

func newTestServer(t *testing.T) *testEnv {
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

	limiter := ratelimit.New(1000, 1000)
	t.Cleanup(limiter.Stop)

	return &testEnv{
		server:   NewServer(users, statuses, pictures, limiter, logger),
		users:    users,
		statuses: statuses,
		pictures: pictures,
	}
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := e.users.Create(ctx, service.CreateUserInput{
		ID: "alice", Email: "alice@example.com", Name: "Alice", LastName: "Smith",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	_, err = e.statuses.Create(ctx, service.CreateStatusInput{
		ID: "st_1", UserID: "alice", Text: "hello",
	})
	if err != nil {
		t.Fatalf("seed status: %v", err)
	}
	_, err = e.pictures.Create(ctx, service.CreatePictureInput{
		ID: "pic_1", UserID: "alice", Tags: "#cats",
	})
	if err != nil {
		t.Fatalf("seed picture: %v", err)
	}
}

func (e *testEnv) get(t *testing.T, path string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)

	var env response.Envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v (body %q)", path, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec, env := e.get(t, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !env.Success {
		t.Error("expected success envelope")
	}
}

func TestGetUser(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/users/alice")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	if data["email"] != "alice@example.com" {
		t.Errorf("unexpected email: %v", data["email"])
	}
}

func TestGetUser_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec, env := e.get(t, "/api/v1/users/ghost")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if env.Success {
		t.Error("expected failure envelope")
	}
}

func TestListUsers(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/users/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list, ok := env.Data.([]any)
	if !ok || len(list) != 1 {
		t.Errorf("expected 1 user, got %v", env.Data)
	}
}

func TestListUserStatuses(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/users/alice/statuses")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list, ok := env.Data.([]any)
	if !ok || len(list) != 1 {
		t.Errorf("expected 1 status, got %v", env.Data)
	}

	rec, _ = e.get(t, "/api/v1/users/ghost/statuses")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %d", rec.Code)
	}
}

func TestGetStatus(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/statuses/st_1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["text"] != "hello" {
		t.Errorf("unexpected status payload: %v", env.Data)
	}
}

func TestGetPicture(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/images/pic_1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	if data["file_name"] != "0000000001.png" {
		t.Errorf("unexpected file name: %v", data["file_name"])
	}
}

func TestGetDifferences(t *testing.T) {
	e := newTestServer(t)
	e.seed(t)

	rec, env := e.get(t, "/api/v1/differences?user_id=alice")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	if _, ok := data["alice"]; !ok {
		t.Errorf("expected result keyed by user, got %v", data)
	}
}

func TestGetDifferences_UnknownUser(t *testing.T) {
	e := newTestServer(t)

	rec, env := e.get(t, "/api/v1/differences?user_id=ghost")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// The empty result map is dropped by omitempty, so Data is nil.
	if env.Data != nil {
		if data, ok := env.Data.(map[string]any); !ok || len(data) != 0 {
			t.Errorf("expected empty object for unknown user, got %v", env.Data)
		}
	}
}

func TestRateLimit(t *testing.T) {
	e := newTestServer(t)

	// Tight limiter just for this test.
	limiter := ratelimit.New(1, 1)
	t.Cleanup(limiter.Stop)
	e.server.limiter = limiter

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
}
