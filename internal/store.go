package internal

import (
	"database/sql"
	"encoding/json"
)

// Storage keys. HistoryKey carries the name over from the original web
// client's localStorage slot.
const (
	HistoryKey = "anonymousChats"
	TokenKey   = "authToken"
)

// Store persists the chat history and auth token in the balanceKV table.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store instance
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadHistory loads all committed sessions. Absent or malformed data yields
// an empty history, never an error: a corrupt store must not take the
// client down.
func (s *Store) LoadHistory() ([]Session, error) {
	value, ok, err := getKV(s.db, HistoryKey)
	if err != nil {
		return nil, &StoreError{Key: HistoryKey, Op: "load", Err: err}
	}
	if !ok {
		return []Session{}, nil
	}

	var sessions []Session
	if err := json.Unmarshal([]byte(value), &sessions); err != nil {
		LogWarn("Malformed chat history, starting empty: %v", err)
		return []Session{}, nil
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

// SaveHistory overwrites the stored history with the given sessions.
func (s *Store) SaveHistory(sessions []Session) error {
	if sessions == nil {
		sessions = []Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return &StoreError{Key: HistoryKey, Op: "save", Err: err}
	}
	if err := setKV(s.db, HistoryKey, string(data)); err != nil {
		return &StoreError{Key: HistoryKey, Op: "save", Err: err}
	}
	return nil
}

// LoadToken returns the stored bearer token, or "" if none is saved.
func (s *Store) LoadToken() (string, error) {
	value, ok, err := getKV(s.db, TokenKey)
	if err != nil {
		return "", &StoreError{Key: TokenKey, Op: "load", Err: err}
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// SaveToken stores the bearer token obtained from login or registration.
func (s *Store) SaveToken(token string) error {
	if err := setKV(s.db, TokenKey, token); err != nil {
		return &StoreError{Key: TokenKey, Op: "save", Err: err}
	}
	return nil
}

// ClearToken removes the stored bearer token.
func (s *Store) ClearToken() error {
	if err := deleteKV(s.db, TokenKey); err != nil {
		return &StoreError{Key: TokenKey, Op: "delete", Err: err}
	}
	return nil
}
