package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/averyhb/balancechat/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	userPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	promptListStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the study-life balance assistant",
	Long: `Start an interactive chat with the assistant.

The conversation is kept locally. Starting a new chat (or quitting) commits
the current conversation to your history once it has at least one exchange.

Commands inside the chat:
  /new            Start a new conversation
  /history        List saved conversations
  /switch <id>    Continue a saved conversation
  /delete <id>    Delete a saved conversation
  /good, /bad     Rate the assistant's last reply
  /quit           Save and exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, db, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open chat storage: %w", err)
		}
		defer db.Close()

		client := newAPIClient(cfg, store)
		controller := internal.NewController(store)
		pipeline := internal.NewPipeline(client)

		return runChatLoop(cmd, controller, pipeline, client, cfg)
	},
}

// feedbackSender is the slice of the API client the chat loop needs for
// /good and /bad.
type feedbackSender interface {
	SendFeedback(ctx context.Context, message string, rating int) error
}

func runChatLoop(cmd *cobra.Command, controller *internal.Controller, pipeline *internal.Pipeline, feedback feedbackSender, cfg internal.Config) error {
	out := cmd.OutOrStdout()
	ctx := cmdContext(cmd)

	printAssistant(out, internal.WelcomeText)
	printSuggestedPrompts(out)
	fmt.Fprintln(out, hintStyle.Render("Type a message, a prompt number, or /quit to save and exit."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, userPromptStyle.Render("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			done, err := handleChatCommand(ctx, out, line, controller, pipeline, feedback)
			if err != nil {
				fmt.Fprintln(out, internal.ErrorStyle.Render(err.Error()))
			}
			if done {
				break
			}
			continue
		}

		// A bare prompt number picks from the suggested list.
		if n, ok := promptNumber(line); ok && controller.Active().UserMessageCount() == 0 {
			line = internal.SuggestedPrompts[n]
			fmt.Fprintln(out, promptListStyle.Render("→ "+line))
		}

		sendAndRender(ctx, out, controller, pipeline, cfg, line)
	}

	if err := controller.Commit(); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return scanner.Err()
}

func sendAndRender(ctx context.Context, out io.Writer, controller *internal.Controller, pipeline *internal.Pipeline, cfg internal.Config, text string) {
	var result internal.SendResult
	err := internal.ShowProgress(ctx, "Thinking about your question...", func() error {
		result = pipeline.Send(ctx, controller.Active(), text, cfg.DefaultModel)
		return nil
	})
	if err != nil {
		internal.LogWarn("Progress interrupted: %v", err)
	}
	if !result.Sent {
		return
	}
	if result.Warning != "" {
		fmt.Fprintln(out, internal.WarningStyle.Render(result.Warning))
	}
	printAssistant(out, result.Reply)
}

// handleChatCommand runs one slash command. It returns true when the loop
// should exit.
func handleChatCommand(ctx context.Context, out io.Writer, line string, controller *internal.Controller, pipeline *internal.Pipeline, feedback feedbackSender) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit", "/q":
		return true, nil

	case "/new":
		if _, err := controller.NewChat(); err != nil {
			return false, fmt.Errorf("failed to start new chat: %w", err)
		}
		pipeline.ResetTopic()
		printAssistant(out, internal.WelcomeText)
		printSuggestedPrompts(out)
		return false, nil

	case "/history":
		sessions, err := controller.History()
		if err != nil {
			return false, fmt.Errorf("failed to load history: %w", err)
		}
		printHistory(out, sessions)
		return false, nil

	case "/switch":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: /switch <session-id>")
		}
		session, err := controller.Select(fields[1])
		if err != nil {
			return false, fmt.Errorf("failed to switch session: %w", err)
		}
		pipeline.ResetTopic()
		if first := session.FirstUserMessage(); first != nil {
			pipeline.Guard().Set(first.Text)
		}
		for _, msg := range session.Messages {
			if msg.Sender == internal.SenderAssistant {
				printAssistant(out, msg.Text)
			} else {
				fmt.Fprintln(out, userPromptStyle.Render("you> ")+msg.Text)
			}
		}
		return false, nil

	case "/delete":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: /delete <session-id>")
		}
		wasActive := controller.Active().ID == fields[1]
		if err := controller.Delete(fields[1]); err != nil {
			return false, fmt.Errorf("failed to delete session: %w", err)
		}
		fmt.Fprintln(out, internal.SuccessStyle.Render("Deleted."))
		if wasActive {
			pipeline.ResetTopic()
			printAssistant(out, internal.WelcomeText)
			printSuggestedPrompts(out)
		}
		return false, nil

	case "/good", "/bad":
		rating := 1
		if fields[0] == "/bad" {
			rating = -1
		}
		last := lastAssistantText(controller.Active())
		if last == "" {
			return false, fmt.Errorf("nothing to rate yet")
		}
		if err := feedback.SendFeedback(ctx, last, rating); err != nil {
			return false, fmt.Errorf("failed to send feedback: %w", err)
		}
		fmt.Fprintln(out, internal.SuccessStyle.Render("Thanks for your feedback!"))
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s", fields[0])
	}
}

func lastAssistantText(session *internal.Session) string {
	for i := len(session.Messages) - 1; i >= 0; i-- {
		if session.Messages[i].Sender == internal.SenderAssistant {
			return session.Messages[i].Text
		}
	}
	return ""
}

func promptNumber(line string) (int, bool) {
	if len(line) != 1 || line[0] < '1' {
		return 0, false
	}
	n := int(line[0] - '1')
	if n >= len(internal.SuggestedPrompts) {
		return 0, false
	}
	return n, true
}

func printAssistant(out io.Writer, text string) {
	fmt.Fprintln(out, assistantStyle.Render("assistant> ")+text)
}

func printSuggestedPrompts(out io.Writer) {
	fmt.Fprintln(out, promptListStyle.Render("Suggested prompts:"))
	for i, prompt := range internal.SuggestedPrompts {
		fmt.Fprintln(out, promptListStyle.Render(fmt.Sprintf("  %d. %s", i+1, prompt)))
	}
}

func printHistory(out io.Writer, sessions []internal.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, promptListStyle.Render("No chats yet."))
		return
	}
	// Full ids, so they can be fed straight to /switch and /delete.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		fmt.Fprintf(out, "  %s  %s (%d messages)\n",
			hintStyle.Render(s.ID), internal.DeriveTitle(&s), len(s.Messages))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
