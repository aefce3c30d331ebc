package internal

import (
	"time"

	"github.com/google/uuid"
)

// Message senders. No other values are valid.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// WelcomeText is the assistant greeting every new session starts with.
const WelcomeText = "Hi! How can I help you with your study-life balance today?"

// ApologyText is appended as the assistant reply when the completion call
// fails. The failure itself is never surfaced to the user.
const ApologyText = "Sorry, I couldn't reach the assistant right now. Please try again in a moment."

// SuggestedPrompts are shown when a chat has no user messages yet.
var SuggestedPrompts = []string{
	"Should I keep studying or take a break?",
	"How can I manage my time better this week?",
	"What is a good way to relax right now?",
	"How do I balance school and personal time?",
	"Give me a calming strategy.",
}

// Message is a single chat message. Messages are immutable once appended;
// ordering is append order.
type Message struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Session is one chat conversation. ID is assigned at creation and never
// reassigned; Timestamp tracks the last update.
type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	Timestamp string    `json:"timestamp"`
}

// NewMessage builds a message stamped with the current time.
func NewMessage(sender, text string) Message {
	return Message{
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// NewWelcomeSession creates a fresh session holding only the assistant
// greeting. Every session starts this way.
func NewWelcomeSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Messages:  []Message{NewMessage(SenderAssistant, WelcomeText)},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Append adds a message and refreshes the session timestamp.
func (s *Session) Append(msg Message) {
	s.Messages = append(s.Messages, msg)
	s.Timestamp = time.Now().Format(time.RFC3339)
}

// FirstUserMessage returns the first user-authored message, or nil if the
// session holds none.
func (s *Session) FirstUserMessage() *Message {
	for i := range s.Messages {
		if s.Messages[i].Sender == SenderUser {
			return &s.Messages[i]
		}
	}
	return nil
}

// UserMessageCount reports how many messages the user has sent.
func (s *Session) UserMessageCount() int {
	n := 0
	for _, msg := range s.Messages {
		if msg.Sender == SenderUser {
			n++
		}
	}
	return n
}

// LastUpdated parses the session timestamp. Returns the zero time if the
// timestamp is missing or malformed.
func (s *Session) LastUpdated() time.Time {
	t, err := time.Parse(time.RFC3339, s.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
