package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/averyhb/balancechat/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved conversations",
	Long:  `List all conversations saved in your local chat history.`,
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

		displaySessions(sessions)
		return nil
	},
}

func displaySessions(sessions []internal.Session) {
	if len(sessions) == 0 {
		fmt.Println(headerStyle.Render("📋 No chats yet"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d conversation(s)", len(sessions)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Updated")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	// Newest first, like the sidebar in the web client.
	for i := len(sessions) - 1; i >= 0; i-- {
		session := sessions[i]

		title := internal.DeriveTitle(&session)
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
		title = nameStyle.Render(title)

		msgCount := countStyle.Render(strconv.Itoa(len(session.Messages)))

		updated := dateStyle.Render("—")
		if t := session.LastUpdated(); !t.IsZero() {
			updated = dateStyle.Render(relativeDate(t))
		}

		id := idStyle.Render(shortID(session.ID))

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", id, title, msgCount, updated)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(sessions[len(sessions)-1].ID) +
		idStyle.Render(") with `balancechat show <id>`"))
}

// relativeDate renders a timestamp the way the list view shows dates:
// denser the closer it is to now.
func relativeDate(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
