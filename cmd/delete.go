package cmd

import (
	"fmt"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a saved conversation",
	Long:  `Permanently remove one conversation from your local chat history.`,
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

		sessions, err = internal.DeleteSession(sessions, args[0])
		if err != nil {
			return fmt.Errorf("failed to delete session %s: %w", args[0], err)
		}

		if err := store.SaveHistory(sessions); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}

		fmt.Println(internal.SuccessStyle.Render("✅ Deleted " + shortID(args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
