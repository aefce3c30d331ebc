package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the assistant backend",
	Long: `Log in with your email and password. The bearer token is stored
locally and attached to later requests (reminders, preferences, documents).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, false)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the assistant backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuth(cmd, true)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored login token",
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

		if err := store.ClearToken(); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		fmt.Println(internal.SuccessStyle.Render("✅ Logged out"))
		return nil
	},
}

func runAuth(cmd *cobra.Command, register bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open chat storage: %w", err)
	}
	defer db.Close()

	email, password, err := readCredentials()
	if err != nil {
		return err
	}

	client := newAPIClient(cfg, nil)
	ctx := cmdContext(cmd)

	action := "login"
	auth := client.Login
	if register {
		action = "register"
		auth = client.Register
	}

	result, err := auth(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%s failed: %w", action, err)
	}

	if err := store.SaveToken(result.AccessToken); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Println(internal.SuccessStyle.Render("✅ Logged in as " + email))
	return nil
}

// readCredentials takes credentials from flags, falling back to prompts.
// The password is read from stdin either way; there is no echo suppression
// here, so flags are the recommended path in scripts.
func readCredentials() (string, string, error) {
	email := authEmail
	password := authPassword
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
	}
}
