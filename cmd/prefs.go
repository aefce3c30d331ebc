package cmd

import (
	"fmt"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var (
	prefStyleFlag string
	prefLevelFlag string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update assistant preferences",
	Long: `Show your stored assistant preferences, or update them with flags.
Requires login.

Examples:
  balancechat prefs
  balancechat prefs --style concise --level undergraduate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := authedClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmdContext(cmd)

		if prefStyleFlag == "" && prefLevelFlag == "" {
			prefs, err := client.Preferences(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch preferences: %w", err)
			}
			displayPreferences(prefs.CommunicationStyle, prefs.StudyLevel)
			return nil
		}

		prefs, err := client.Preferences(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch preferences: %w", err)
		}
		if prefStyleFlag != "" {
			prefs.CommunicationStyle = prefStyleFlag
		}
		if prefLevelFlag != "" {
			prefs.StudyLevel = prefLevelFlag
		}
		if err := client.UpdatePreferences(ctx, prefs); err != nil {
			return fmt.Errorf("failed to update preferences: %w", err)
		}
		fmt.Println(internal.SuccessStyle.Render("✅ Preferences updated"))
		displayPreferences(prefs.CommunicationStyle, prefs.StudyLevel)
		return nil
	},
}

func displayPreferences(style, level string) {
	if style == "" {
		style = "-"
	}
	if level == "" {
		level = "-"
	}
	fmt.Printf("%s %s\n", headerStyle.Render("Communication style:"), style)
	fmt.Printf("%s %s\n", headerStyle.Render("Study level:        "), level)
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.Flags().StringVar(&prefStyleFlag, "style", "", "Communication style (e.g. concise, friendly)")
	prefsCmd.Flags().StringVar(&prefLevelFlag, "level", "", "Study level (e.g. high-school, undergraduate)")
}
