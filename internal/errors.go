package internal

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session id is not present in the
// history store. Callers fail fast on it instead of guessing.
var ErrSessionNotFound = errors.New("session not found")

// StoreError represents errors accessing the persistent store
type StoreError struct {
	Key string
	Op  string // "open", "load", "save"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the backend
type APIError struct {
	Endpoint string
	Status   int
	Detail   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: %s returned %d: %s", e.Endpoint, e.Status, e.Detail)
	}
	return fmt.Sprintf("api error: %s returned %d", e.Endpoint, e.Status)
}

// ConfigError represents errors loading or parsing configuration
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error: [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
