package internal

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeCompleter is a scriptable CompletionClient.
type fakeCompleter struct {
	reply string
	err   error
	calls int

	// lastMessage and lastHistory capture the most recent call.
	lastMessage string
	lastHistory []Message
}

func (f *fakeCompleter) Complete(ctx context.Context, message string, history []Message, model string) (string, error) {
	f.calls++
	f.lastMessage = message
	f.lastHistory = history
	return f.reply, f.err
}

func TestPipeline_Send(t *testing.T) {
	client := &fakeCompleter{reply: "Take a ten minute walk."}
	p := NewPipeline(client)
	session := NewWelcomeSession()

	result := p.Send(context.Background(), session, "Should I take a break?", "fallback-enhanced")

	if !result.Sent {
		t.Fatal("Send() not sent, want sent")
	}
	if result.Reply != "Take a ten minute walk." {
		t.Errorf("Reply = %q, want client reply", result.Reply)
	}
	if result.Warning != "" {
		t.Errorf("Warning = %q, want none for first message", result.Warning)
	}
	if len(session.Messages) != 3 {
		t.Fatalf("session has %d messages, want 3 (welcome + user + reply)", len(session.Messages))
	}
	if session.Messages[1].Sender != SenderUser || session.Messages[1].Text != "Should I take a break?" {
		t.Errorf("user message = %+v, want sent text", session.Messages[1])
	}
	if session.Messages[2].Sender != SenderAssistant || session.Messages[2].Text != "Take a ten minute walk." {
		t.Errorf("assistant message = %+v, want reply", session.Messages[2])
	}
	if p.Guard().Topic() != "Should I take a break?" {
		t.Errorf("topic = %q, want first message text", p.Guard().Topic())
	}
}

func TestPipeline_Send_TrimsWhitespace(t *testing.T) {
	client := &fakeCompleter{reply: "ok"}
	p := NewPipeline(client)
	session := NewWelcomeSession()

	result := p.Send(context.Background(), session, "  hello there  ", "m")

	if !result.Sent {
		t.Fatal("Send() not sent, want sent")
	}
	if client.lastMessage != "hello there" {
		t.Errorf("sent message = %q, want trimmed text", client.lastMessage)
	}
}

func TestPipeline_Send_BlankNoOp(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCompleter{reply: "ok"}
			p := NewPipeline(client)
			session := NewWelcomeSession()

			result := p.Send(context.Background(), session, tt.text, "m")

			if result.Sent {
				t.Error("Send() sent, want rejected")
			}
			if len(session.Messages) != 1 {
				t.Errorf("session has %d messages, want untouched welcome session", len(session.Messages))
			}
			if client.calls != 0 {
				t.Errorf("client called %d times, want 0", client.calls)
			}
		})
	}
}

func TestPipeline_Send_FailureAppendsApology(t *testing.T) {
	client := &fakeCompleter{err: errors.New("connection refused")}
	p := NewPipeline(client)
	session := NewWelcomeSession()

	result := p.Send(context.Background(), session, "Help me plan my week", "m")

	if !result.Sent {
		t.Fatal("Send() not sent, want sent despite failure")
	}
	if result.Reply != ApologyText {
		t.Errorf("Reply = %q, want apology", result.Reply)
	}
	if len(session.Messages) != 3 {
		t.Fatalf("session has %d messages, want user message and apology appended", len(session.Messages))
	}
	if session.Messages[2].Text != ApologyText {
		t.Errorf("last message = %q, want apology", session.Messages[2].Text)
	}
}

func TestPipeline_Send_OffTopicWarning(t *testing.T) {
	client := &fakeCompleter{reply: "ok"}
	p := NewPipeline(client)
	session := NewWelcomeSession()

	p.Send(context.Background(), session, "exam stress", "m")
	result := p.Send(context.Background(), session, "What's for dinner?", "m")

	if result.Warning == "" {
		t.Fatal("Warning empty, want off-topic nudge")
	}
	if !strings.Contains(result.Warning, `"exam stress"`) {
		t.Errorf("Warning = %q, want topic quoted", result.Warning)
	}
	// The message still goes through; the warning is advisory.
	if !result.Sent {
		t.Error("Send() not sent, want off-topic message still delivered")
	}
}

func TestPipeline_Send_OnTopicNoWarning(t *testing.T) {
	client := &fakeCompleter{reply: "ok"}
	p := NewPipeline(client)
	session := NewWelcomeSession()

	p.Send(context.Background(), session, "exam stress", "m")
	result := p.Send(context.Background(), session, "Tell me more about exam stress", "m")

	if result.Warning != "" {
		t.Errorf("Warning = %q, want none for on-topic message", result.Warning)
	}
}

// reentrantCompleter tries to send again from inside a completion call,
// checking the busy gate.
type reentrantCompleter struct {
	pipeline *Pipeline
	session  *Session
	nested   SendResult
}

func (r *reentrantCompleter) Complete(ctx context.Context, message string, history []Message, model string) (string, error) {
	if r.pipeline != nil {
		r.nested = r.pipeline.Send(ctx, r.session, "sneaky second send", model)
		r.pipeline = nil
	}
	return "ok", nil
}

func TestPipeline_Send_BusyGate(t *testing.T) {
	client := &reentrantCompleter{}
	p := NewPipeline(client)
	session := NewWelcomeSession()
	client.pipeline = p
	client.session = session

	result := p.Send(context.Background(), session, "first send", "m")

	if !result.Sent {
		t.Fatal("outer Send() not sent, want sent")
	}
	if client.nested.Sent {
		t.Error("nested Send() sent, want rejected while busy")
	}
	if p.Busy() {
		t.Error("Busy() = true after Send returned, want false")
	}
}

func TestPipeline_ResetTopic(t *testing.T) {
	p := NewPipeline(&fakeCompleter{reply: "ok"})
	session := NewWelcomeSession()

	p.Send(context.Background(), session, "exam stress", "m")
	p.ResetTopic()

	if p.Guard().Topic() != "" {
		t.Errorf("topic = %q after reset, want empty", p.Guard().Topic())
	}
}
