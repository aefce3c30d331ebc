package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockBackend is a fake balance assistant backend for client tests.
type MockBackend struct {
	Server *httptest.Server

	// Reply is returned from /api/chat.
	Reply string
	// FailChat makes /api/chat return 500.
	FailChat bool
	// LastChatBody captures the most recent /api/chat request body.
	LastChatBody map[string]interface{}
	// LastAuthHeader captures the Authorization header of the last request.
	LastAuthHeader string
}

// NewMockBackend starts a fake backend. It is shut down via t.Cleanup.
func NewMockBackend(t *testing.T) *MockBackend {
	t.Helper()
	m := &MockBackend{Reply: "Take a short break, then review your plan."}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		m.LastAuthHeader = r.Header.Get("Authorization")
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		m.LastChatBody = body

		if m.FailChat {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "model unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"response": m.Reply})
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		authHandler(w, r, "valid@example.com")
	})
	mux.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		authHandler(w, r, "")
	})
	mux.HandleFunc("/api/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"available_models": []string{"fallback-enhanced", "huggingface-free", "community-free", "ollama-local"},
			"default_model":    "fallback-enhanced",
		})
	})
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		m.LastAuthHeader = r.Header.Get("Authorization")
		if r.Method == http.MethodPost {
			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"id": 1, "title": body["title"], "description": body["description"],
				"due_date": body["due_date"], "completed": false,
			})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 1, "title": "Math revision", "description": "Chapter 4", "due_date": "2026-09-01T10:00:00Z", "completed": false},
		})
	})
	mux.HandleFunc("/api/reminders/1/complete", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 1, "completed": true})
	})
	mux.HandleFunc("/api/user/preferences", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"communication_style": "neutral", "study_level": "high_school", "preferences": map[string]interface{}{},
		})
	})
	mux.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 1, "filename": "notes.txt", "file_type": "text/plain", "uploaded_at": "2026-08-01T12:00:00Z"},
		})
	})
	mux.HandleFunc("/api/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	m.Server = httptest.NewServer(mux)
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the mock backend's base URL.
func (m *MockBackend) URL() string {
	return m.Server.URL
}

func authHandler(w http.ResponseWriter, r *http.Request, knownEmail string) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	// Registration accepts anyone; login only the known account.
	if knownEmail != "" && body["email"] != knownEmail {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": "test-token", "token_type": "bearer"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
