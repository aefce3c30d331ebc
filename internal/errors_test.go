package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStoreError(t *testing.T) {
	inner := errors.New("disk full")
	err := &StoreError{Key: "anonymousChats", Op: "save", Err: inner}

	if !strings.Contains(err.Error(), "anonymousChats") || !strings.Contains(err.Error(), "save") {
		t.Errorf("Error() = %q, want key and op included", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() failed to unwrap StoreError")
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with detail",
			err:  &APIError{Endpoint: "/api/login", Status: 401, Detail: "Incorrect email or password"},
			want: "api error: /api/login returned 401: Incorrect email or password",
		},
		{
			name: "without detail",
			err:  &APIError{Endpoint: "/api/chat", Status: 500},
			want: "api error: /api/chat returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrSessionNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to switch: %w", ErrSessionNotFound)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Error("errors.Is() failed through wrapping")
	}
}

func TestExportError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &ExportError{Format: "jsonl", Path: "/exports/session_a.jsonl", Err: inner}

	if !strings.Contains(err.Error(), "jsonl") || !strings.Contains(err.Error(), "/exports/session_a.jsonl") {
		t.Errorf("Error() = %q, want format and path included", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() failed to unwrap ExportError")
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	inner := errors.New("yaml: bad")
	err := &ConfigError{Path: "/tmp/config.yaml", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is() failed to unwrap ConfigError")
	}
	if !strings.Contains(err.Error(), "/tmp/config.yaml") {
		t.Errorf("Error() = %q, want path included", err.Error())
	}
}
