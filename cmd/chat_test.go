package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/averyhb/balancechat/internal"
	"github.com/averyhb/balancechat/testutil"
)

type stubCompleter struct {
	reply string
}

func (s *stubCompleter) Complete(ctx context.Context, message string, history []internal.Message, model string) (string, error) {
	return s.reply, nil
}

type stubFeedback struct {
	lastMessage string
	lastRating  int
	calls       int
}

func (s *stubFeedback) SendFeedback(ctx context.Context, message string, rating int) error {
	s.calls++
	s.lastMessage = message
	s.lastRating = rating
	return nil
}

func newChatFixture(t *testing.T) (*internal.Controller, *internal.Pipeline) {
	t.Helper()
	db := testutil.CreateInMemoryDB(t)
	t.Cleanup(func() { _ = db.Close() })
	controller := internal.NewController(internal.NewStore(db))
	pipeline := internal.NewPipeline(&stubCompleter{reply: "Try a short walk."})
	return controller, pipeline
}

func TestHandleChatCommand_Quit(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	for _, cmd := range []string{"/quit", "/exit", "/q"} {
		done, err := handleChatCommand(context.Background(), &out, cmd, controller, pipeline, &stubFeedback{})
		if err != nil {
			t.Errorf("%s error = %v", cmd, err)
		}
		if !done {
			t.Errorf("%s did not end the loop", cmd)
		}
	}
}

func TestHandleChatCommand_New(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	controller.Active().Append(internal.NewMessage(internal.SenderUser, "exam stress"))
	pipeline.Guard().Set("exam stress")
	oldID := controller.Active().ID

	done, err := handleChatCommand(context.Background(), &out, "/new", controller, pipeline, &stubFeedback{})
	if err != nil {
		t.Fatalf("/new error = %v", err)
	}
	if done {
		t.Error("/new ended the loop")
	}
	if controller.Active().ID == oldID {
		t.Error("/new did not replace the active session")
	}
	if pipeline.Guard().Topic() != "" {
		t.Error("/new did not reset the topic")
	}
	if !strings.Contains(out.String(), internal.WelcomeText) {
		t.Error("/new did not print the welcome message")
	}
}

func TestHandleChatCommand_SwitchReseedsTopic(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	// Store a finished conversation, then switch to it.
	controller.Active().Append(internal.NewMessage(internal.SenderUser, "sleep schedule"))
	if err := controller.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	storedID := controller.Active().ID

	if _, err := controller.NewChat(); err != nil {
		t.Fatalf("NewChat() error = %v", err)
	}
	pipeline.ResetTopic()

	done, err := handleChatCommand(context.Background(), &out, "/switch "+storedID, controller, pipeline, &stubFeedback{})
	if err != nil {
		t.Fatalf("/switch error = %v", err)
	}
	if done {
		t.Error("/switch ended the loop")
	}
	if controller.Active().ID != storedID {
		t.Errorf("active = %q, want switched session", controller.Active().ID)
	}
	if pipeline.Guard().Topic() != "sleep schedule" {
		t.Errorf("topic = %q, want re-seeded from first user message", pipeline.Guard().Topic())
	}
}

func TestHandleChatCommand_HistoryShowsFullIDs(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	controller.Active().Append(internal.NewMessage(internal.SenderUser, "sleep schedule"))
	if err := controller.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	storedID := controller.Active().ID

	if _, err := handleChatCommand(context.Background(), &out, "/history", controller, pipeline, &stubFeedback{}); err != nil {
		t.Fatalf("/history error = %v", err)
	}

	// The printed id must work verbatim as a /switch argument.
	if !strings.Contains(out.String(), storedID) {
		t.Errorf("/history output %q missing full id %q", out.String(), storedID)
	}
}

func TestHandleChatCommand_SwitchUnknown(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	_, err := handleChatCommand(context.Background(), &out, "/switch nope", controller, pipeline, &stubFeedback{})
	if err == nil {
		t.Error("/switch with unknown id succeeded, want error")
	}
}

func TestHandleChatCommand_Feedback(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer
	feedback := &stubFeedback{}

	controller.Active().Append(internal.NewMessage(internal.SenderUser, "hi"))
	controller.Active().Append(internal.NewMessage(internal.SenderAssistant, "Try a short walk."))

	if _, err := handleChatCommand(context.Background(), &out, "/good", controller, pipeline, feedback); err != nil {
		t.Fatalf("/good error = %v", err)
	}
	if feedback.lastRating != 1 || feedback.lastMessage != "Try a short walk." {
		t.Errorf("feedback = (%q, %d), want last reply rated 1", feedback.lastMessage, feedback.lastRating)
	}

	if _, err := handleChatCommand(context.Background(), &out, "/bad", controller, pipeline, feedback); err != nil {
		t.Fatalf("/bad error = %v", err)
	}
	if feedback.lastRating != -1 {
		t.Errorf("rating = %d, want -1", feedback.lastRating)
	}
}

func TestHandleChatCommand_FeedbackNothingToRate(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	// The welcome message counts as a rateable reply, so remove everything.
	controller.Active().Messages = nil
	_, err := handleChatCommand(context.Background(), &out, "/good", controller, pipeline, &stubFeedback{})
	if err == nil {
		t.Error("/good with no assistant reply succeeded, want error")
	}
}

func TestHandleChatCommand_Unknown(t *testing.T) {
	controller, pipeline := newChatFixture(t)
	var out bytes.Buffer

	_, err := handleChatCommand(context.Background(), &out, "/wat", controller, pipeline, &stubFeedback{})
	if err == nil {
		t.Error("unknown command succeeded, want error")
	}
}

func TestPromptNumber(t *testing.T) {
	tests := []struct {
		line   string
		want   int
		wantOK bool
	}{
		{line: "1", want: 0, wantOK: true},
		{line: "5", want: 4, wantOK: true},
		{line: "6", wantOK: false},
		{line: "0", wantOK: false},
		{line: "12", wantOK: false},
		{line: "hello", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := promptNumber(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("promptNumber(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("promptNumber(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestLastAssistantText(t *testing.T) {
	s := internal.NewWelcomeSession()
	if got := lastAssistantText(s); got != internal.WelcomeText {
		t.Errorf("lastAssistantText() = %q, want welcome", got)
	}

	s.Append(internal.NewMessage(internal.SenderUser, "hi"))
	s.Append(internal.NewMessage(internal.SenderAssistant, "hello"))
	s.Append(internal.NewMessage(internal.SenderUser, "bye"))
	if got := lastAssistantText(s); got != "hello" {
		t.Errorf("lastAssistantText() = %q, want most recent assistant reply", got)
	}
}
