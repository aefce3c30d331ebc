package cmd

import (
	"fmt"

	"github.com/averyhb/balancechat/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusVerbose bool

var (
	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		Underline(true)
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check local storage and backend connectivity",
	Long: `Check the health of balancechat by verifying:
  • Local chat storage access
  • Saved conversation count
  • Backend reachability
  • Login state

This command is useful for debugging storage or connectivity issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Balancechat Status"))
		fmt.Println()

		cfg, err := loadConfig()
		if err != nil {
			fmt.Println(internal.ErrorStyle.Render("❌ Failed to load config:"), err)
			return err
		}

		// Step 1: local storage
		fmt.Println(infoStyle.Render("Step 1: Opening chat storage..."))
		store, db, err := openStore(cfg)
		if err != nil {
			fmt.Println(internal.ErrorStyle.Render("❌ Failed to open chat storage:"), err)
			return err
		}
		defer db.Close()
		fmt.Println(internal.SuccessStyle.Render("✅ Chat storage opened"))
		if statusVerbose {
			if path, pathErr := internal.DatabasePath(cfg.StoragePath); pathErr == nil {
				fmt.Printf("   Database: %s\n", path)
			}
		}
		fmt.Println()

		// Step 2: saved conversations
		fmt.Println(infoStyle.Render("Step 2: Loading saved conversations..."))
		history, err := store.LoadHistory()
		if err != nil {
			fmt.Println(internal.ErrorStyle.Render("❌ Failed to load conversations:"), err)
			return err
		}
		if len(history) > 0 {
			fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("✅ Found %d conversation(s)", len(history))))
			if statusVerbose {
				for i, session := range history {
					if i < 5 {
						fmt.Printf("   [%d] %s (ID: %s)\n", i+1, internal.DeriveTitle(&session), shortID(session.ID))
					}
				}
				if len(history) > 5 {
					fmt.Printf("   ... and %d more\n", len(history)-5)
				}
			}
		} else {
			fmt.Println(internal.WarningStyle.Render("⚠️  No saved conversations yet"))
		}
		fmt.Println()

		// Step 3: backend
		fmt.Println(infoStyle.Render("Step 3: Checking backend..."))
		client := newAPIClient(cfg, store)
		models, err := client.Models(cmdContext(cmd))
		backendUp := err == nil
		if backendUp {
			fmt.Println(internal.SuccessStyle.Render("✅ Backend reachable at " + cfg.ServerURL))
			if statusVerbose {
				fmt.Printf("   Models: %d available, default %q\n", len(models.AvailableModels), models.DefaultModel)
			}
		} else {
			fmt.Println(internal.WarningStyle.Render("⚠️  Backend not reachable at " + cfg.ServerURL))
			if statusVerbose {
				fmt.Printf("   Error: %v\n", err)
			}
		}
		fmt.Println()

		// Step 4: login state
		fmt.Println(infoStyle.Render("Step 4: Checking login state..."))
		token, err := store.LoadToken()
		if err != nil {
			fmt.Println(internal.WarningStyle.Render("⚠️  Could not read stored token:"), err)
		} else if token != "" {
			fmt.Println(internal.SuccessStyle.Render("✅ Logged in (token stored)"))
		} else {
			fmt.Println(internal.WarningStyle.Render("⚠️  Not logged in"))
			fmt.Println("   Reminders, preferences, and uploads need 'balancechat login'.")
		}
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()
		if backendUp {
			fmt.Println(internal.SuccessStyle.Render("✅ Ready to chat"))
			fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("   • Conversations: %d saved", len(history))))
			return nil
		}
		fmt.Println(internal.WarningStyle.Render("⚠️  Storage is working but the backend is down"))
		fmt.Println("   • Saved conversations can still be listed and exported")
		fmt.Println("   • New messages will get an apology reply until the backend is back")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusVerbose, "detail", false, "Show detailed diagnostic information")
}
