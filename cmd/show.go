package cmd

import (
	"fmt"
	"time"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a saved conversation",
	Long:  `Show the full message history of one saved conversation.`,
	Args:  cobra.ExactArgs(1),
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

		sessions, err := store.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		session, err := internal.SelectSession(sessions, args[0])
		if err != nil {
			return fmt.Errorf("failed to find session %s: %w", args[0], err)
		}

		displaySession(session)
		return nil
	},
}

func displaySession(session *internal.Session) {
	fmt.Println(headerStyle.Render("💬 " + internal.DeriveTitle(session)))
	fmt.Println(idStyle.Render(session.ID))
	fmt.Println()

	for _, msg := range session.Messages {
		label := userPromptStyle.Render("you")
		if msg.Sender == internal.SenderAssistant {
			label = assistantStyle.Render("assistant")
		}

		timestamp := ""
		if t, err := time.Parse(time.RFC3339, msg.Timestamp); err == nil {
			timestamp = dateStyle.Render("  " + t.Format("Jan 02 15:04"))
		}

		fmt.Printf("%s%s\n%s\n\n", label, timestamp, msg.Text)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
