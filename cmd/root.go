package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/averyhb/balancechat/internal"
	"github.com/averyhb/balancechat/internal/api"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	serverURL   string
	modelFlag   string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "balancechat",
	Short: "Terminal client for the study-life balance assistant",
	Long: `A terminal client for the study-life balance chat assistant.

Chat with the assistant, keep your conversation history locally, and manage
reminders, models, preferences, and study documents on the backend.

Quick Start:
  balancechat chat                   # Start chatting
  balancechat list                   # List saved conversations
  balancechat show <session-id>      # View a saved conversation
  balancechat export --format md     # Export conversations as Markdown

Login is optional: anonymous chats work and stay on your machine. Log in
with 'balancechat login' to use reminders, preferences, and documents.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the chat database file)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Model identifier to use (overrides config)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig resolves the effective configuration: file, env, then flags.
func loadConfig() (internal.Config, error) {
	path, err := internal.ConfigPath()
	if err != nil {
		return internal.Config{}, err
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return internal.Config{}, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if modelFlag != "" {
		cfg.DefaultModel = modelFlag
	}
	if storagePath != "" {
		cfg.StoragePath = storagePath
	}
	return cfg, nil
}

// openStore opens the chat database and wraps it in a Store. The caller
// closes the returned db.
func openStore(cfg internal.Config) (*internal.Store, *sql.DB, error) {
	dbPath, err := internal.DatabasePath(cfg.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	db, err := internal.OpenDatabase(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return internal.NewStore(db), db, nil
}

// newAPIClient builds a backend client carrying the stored token, if any.
func newAPIClient(cfg internal.Config, store *internal.Store) *api.Client {
	client := api.NewClient(cfg.ServerURL, cfg.RequestTimeout())
	if store != nil {
		token, err := store.LoadToken()
		if err != nil {
			internal.LogWarn("Failed to load auth token: %v", err)
		} else if token != "" {
			client.SetToken(token)
		}
	}
	return client
}
