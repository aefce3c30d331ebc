package internal

import (
	"time"
)

// CreateTestSession creates a committed test session with one exchange
func CreateTestSession(id string) *Session {
	now := time.Now().Format(time.RFC3339)
	return &Session{
		ID: id,
		Messages: []Message{
			{Sender: SenderAssistant, Text: WelcomeText, Timestamp: now},
			{Sender: SenderUser, Text: "How do I balance study and sleep?", Timestamp: now},
			{Sender: SenderAssistant, Text: "Keep a fixed bedtime and plan study blocks earlier.", Timestamp: now},
		},
		Timestamp: now,
	}
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *Session {
	return &Session{
		ID:        id,
		Messages:  messages,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// CreateTestHistory creates n committed test sessions with distinct ids
func CreateTestHistory(ids ...string) []Session {
	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, *CreateTestSession(id))
	}
	return sessions
}
