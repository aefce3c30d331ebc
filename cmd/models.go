package cmd

import (
	"fmt"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models the backend can route to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client := newAPIClient(cfg, nil)
		resp, err := client.Models(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("failed to fetch models: %w", err)
		}

		fmt.Println(headerStyle.Render("AVAILABLE MODELS"))
		for _, m := range resp.AvailableModels {
			marker := "  "
			if m == resp.DefaultModel {
				marker = internal.SuccessStyle.Render("* ")
			}
			fmt.Printf("%s%s\n", marker, m)
		}
		if resp.DefaultModel != "" {
			fmt.Printf("\n%s\n", hintStyle.Render("* default — override with --model or BALANCECHAT_MODEL"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
