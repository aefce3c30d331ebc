package internal

import (
	"context"
	"strings"
)

// CompletionClient obtains the assistant's reply for a message and the
// session history so far.
type CompletionClient interface {
	Complete(ctx context.Context, message string, history []Message, model string) (string, error)
}

// SendResult is what the pipeline hands back for rendering.
type SendResult struct {
	// Reply is the assistant's reply text, or the apology text on failure.
	Reply string
	// Warning is the off-topic nudge, or "" when the message is on-topic.
	Warning string
	// Sent is false when the send was rejected (blank text or a send
	// already in flight) and the session was left untouched.
	Sent bool
}

// Pipeline orchestrates one send: append the user message, consult the
// topic guard, call the backend, append the reply. At most one send is in
// flight at a time; the busy flag gates re-entry.
type Pipeline struct {
	client CompletionClient
	guard  *TopicGuard
	busy   bool
}

// NewPipeline creates a pipeline for one active session's sends.
func NewPipeline(client CompletionClient) *Pipeline {
	return &Pipeline{
		client: client,
		guard:  &TopicGuard{},
	}
}

// Guard exposes the topic guard, mainly so callers can reset it together
// with the active session.
func (p *Pipeline) Guard() *TopicGuard {
	return p.guard
}

// ResetTopic forgets the session topic. Called when the active session is
// replaced.
func (p *Pipeline) ResetTopic() {
	p.guard = &TopicGuard{}
}

// Busy reports whether a send is in flight.
func (p *Pipeline) Busy() bool {
	return p.busy
}

// Send runs the pipeline against the active session. Failures of the
// completion call are absorbed into the apology reply; Send never returns
// an error.
func (p *Pipeline) Send(ctx context.Context, session *Session, text, model string) SendResult {
	text = strings.TrimSpace(text)
	if text == "" || p.busy {
		return SendResult{}
	}
	p.busy = true
	defer func() { p.busy = false }()

	session.Append(NewMessage(SenderUser, text))

	var warning string
	if p.guard.Topic() == "" {
		p.guard.Set(text)
	} else if p.guard.OffTopic(text) {
		warning = p.guard.Warning()
	}

	reply, err := p.client.Complete(ctx, text, session.Messages, model)
	if err != nil {
		LogWarn("Completion call failed: %v", err)
		reply = ApologyText
	}
	session.Append(NewMessage(SenderAssistant, reply))

	return SendResult{Reply: reply, Warning: warning, Sent: true}
}
