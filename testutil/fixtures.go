package testutil

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

// historyKey mirrors the store's history slot.
const historyKey = "anonymousChats"

// SessionFixture is raw session data for seeding the store, shaped like
// the persisted JSON without depending on the domain types.
type SessionFixture struct {
	ID       string
	Question string
	Answer   string
}

// SeedHistory writes fixtures into the history key as the JSON blob the
// store expects: a welcome message plus one user/assistant exchange each.
func SeedHistory(t *testing.T, db *sql.DB, fixtures []SessionFixture) {
	t.Helper()
	InsertKV(t, db, historyKey, HistoryJSON(t, fixtures))
}

// HistoryJSON renders fixtures as the persisted history blob.
func HistoryJSON(t *testing.T, fixtures []SessionFixture) string {
	t.Helper()
	now := time.Now().Format(time.RFC3339)

	sessions := make([]map[string]interface{}, 0, len(fixtures))
	for _, f := range fixtures {
		sessions = append(sessions, map[string]interface{}{
			"id": f.ID,
			"messages": []map[string]string{
				{"sender": "assistant", "text": "Hi! How can I help you with your study-life balance today?", "timestamp": now},
				{"sender": "user", "text": f.Question, "timestamp": now},
				{"sender": "assistant", "text": f.Answer, "timestamp": now},
			},
			"timestamp": now,
		})
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		t.Fatalf("Failed to marshal history fixture: %v", err)
	}
	return string(data)
}

// SampleFixtures builds n session fixtures with distinct ids.
func SampleFixtures(n int) []SessionFixture {
	fixtures := make([]SessionFixture, 0, n)
	for i := 0; i < n; i++ {
		fixtures = append(fixtures, SessionFixture{
			ID:       fmt.Sprintf("session-%d", i),
			Question: fmt.Sprintf("How do I plan week %d?", i),
			Answer:   "Try blocking out study and rest time.",
		})
	}
	return fixtures
}
