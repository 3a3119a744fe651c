package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code   Code
		status int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeValidation, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.status {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.status)
		}
	}
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := NotFound("user u1 not found")
	if !Is(err, ErrNotFound) {
		t.Error("NotFound error should match ErrNotFound sentinel")
	}
	if Is(err, ErrAlreadyExists) {
		t.Error("NotFound error should not match ErrAlreadyExists")
	}
}

func TestErrorIs_ThroughWrapping(t *testing.T) {
	inner := AlreadyExists("picture exists")
	wrapped := fmt.Errorf("create picture: %w", inner)

	if !Is(wrapped, ErrAlreadyExists) {
		t.Error("wrapped error should still match by code")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "write failed")

	if err.Error() != "write failed: disk full" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
	if Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestWithDetails(t *testing.T) {
	base := Validation("validation failed")
	detailed := base.WithDetails(map[string]string{"user_id": "is required"})

	if detailed.Details == nil {
		t.Fatal("expected details to be set")
	}
	// Original must be unchanged.
	if base.Details != nil {
		t.Error("WithDetails should not mutate the receiver")
	}
	if !Is(detailed, ErrValidation) {
		t.Error("detailed error should keep its code")
	}
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{"email": "must be a valid email address"})
	if err.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus())
	}
}
