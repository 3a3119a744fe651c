package menu

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

// stubExec records which handlers the menu loop dispatched.
type stubExec struct {
	calls []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) LoadUsers(context.Context) error          { return s.record("LoadUsers") }
func (s *stubExec) LoadStatuses(context.Context) error       { return s.record("LoadStatuses") }
func (s *stubExec) LoadPictures(context.Context) error       { return s.record("LoadPictures") }
func (s *stubExec) AddUser(context.Context) error            { return s.record("AddUser") }
func (s *stubExec) UpdateUser(context.Context) error         { return s.record("UpdateUser") }
func (s *stubExec) SearchUser(context.Context) error         { return s.record("SearchUser") }
func (s *stubExec) DeleteUser(context.Context) error         { return s.record("DeleteUser") }
func (s *stubExec) AddStatus(context.Context) error          { return s.record("AddStatus") }
func (s *stubExec) UpdateStatus(context.Context) error       { return s.record("UpdateStatus") }
func (s *stubExec) SearchStatus(context.Context) error       { return s.record("SearchStatus") }
func (s *stubExec) DeleteStatus(context.Context) error       { return s.record("DeleteStatus") }
func (s *stubExec) AddPicture(context.Context) error         { return s.record("AddPicture") }
func (s *stubExec) ListPicturesByUser(context.Context) error { return s.record("ListPicturesByUser") }
func (s *stubExec) ReconcilePictures(context.Context) error  { return s.record("ReconcilePictures") }

func runWithInput(t *testing.T, input string) (*stubExec, string) {
	t.Helper()
	stub := &stubExec{}
	var out bytes.Buffer
	runMenu(context.Background(), stub, bufio.NewReader(strings.NewReader(input)), &out)
	return stub, out.String()
}

func TestRunMenu_DispatchesAll(t *testing.T) {
	stub, _ := runWithInput(t, "A\nB\nC\nD\nE\nF\nG\nH\nI\nJ\nK\nL\nM\nN\nQ\n")

	want := []string{
		"LoadUsers", "LoadStatuses", "AddUser", "UpdateUser", "SearchUser",
		"DeleteUser", "AddStatus", "UpdateStatus", "SearchStatus", "DeleteStatus",
		"AddPicture", "ListPicturesByUser", "ReconcilePictures", "LoadPictures",
	}
	if len(stub.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), stub.calls)
	}
	for i, name := range want {
		if stub.calls[i] != name {
			t.Errorf("call %d: expected %s, got %s", i, name, stub.calls[i])
		}
	}
}

func TestRunMenu_CaseInsensitive(t *testing.T) {
	stub, _ := runWithInput(t, "c\nq\n")
	if len(stub.calls) != 1 || stub.calls[0] != "AddUser" {
		t.Errorf("expected lowercase selection to dispatch, got %v", stub.calls)
	}
}

func TestRunMenu_InvalidOption(t *testing.T) {
	_, out := runWithInput(t, "Z\nQ\n")
	if !strings.Contains(out, "not a valid option") {
		t.Error("expected invalid option message")
	}
}

func TestRunMenu_QuitPrintsBye(t *testing.T) {
	_, out := runWithInput(t, "Q\n")
	if !strings.Contains(out, "Bye!") {
		t.Error("expected quit message")
	}
}

func TestRunMenu_ExitsOnEOF(t *testing.T) {
	stub, _ := runWithInput(t, "")
	if len(stub.calls) != 0 {
		t.Errorf("expected no calls on immediate EOF, got %v", stub.calls)
	}
}

func TestRunMenu_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubExec{}
	var out bytes.Buffer
	runMenu(ctx, stub, bufio.NewReader(strings.NewReader("A\nQ\n")), &out)
	if len(stub.calls) != 0 {
		t.Errorf("expected no dispatch after cancel, got %v", stub.calls)
	}
}
