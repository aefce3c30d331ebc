package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/averyhb/balancechat/internal"
	"github.com/averyhb/balancechat/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	sessionID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved conversations to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

You can export all sessions or a specific session by ID.
Use 'balancechat list' to see available session IDs.`,
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

		// Filter by session ID if specified
		if sessionID != "" {
			session, err := internal.SelectSession(sessions, sessionID)
			if err != nil {
				return fmt.Errorf("session not found: %s (use 'balancechat list' to see available sessions)", sessionID)
			}
			sessions = []internal.Session{*session}
		}

		if len(sessions) == 0 {
			fmt.Println(headerStyle.Render("📋 No chats to export"))
			return nil
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		ctx := cmdContext(cmd)
		err = internal.ShowProgress(ctx, fmt.Sprintf("Exporting %d session(s) to %s", len(sessions), outputDir), func() error {
			for i := range sessions {
				session := &sessions[i]
				filename := fmt.Sprintf("session_%s.%s", session.ID, exporter.Extension())
				path := filepath.Join(outputDir, filename)

				file, err := os.Create(path)
				if err != nil {
					internal.LogError("%v", &internal.ExportError{Format: format, Path: path, Err: err})
					continue
				}

				if err := exporter.Export(session, file); err != nil {
					_ = file.Close()
					internal.LogError("%v", &internal.ExportError{Format: format, Path: path, Err: err})
					continue
				}

				if err := file.Close(); err != nil {
					internal.LogWarn("Failed to close file %s: %v", path, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("✅ Export complete: %d session(s) exported to %s", len(sessions), outputDir)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&sessionID, "session-id", "", "Export a specific session by ID")
}
