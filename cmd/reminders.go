package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/averyhb/balancechat/internal"
	"github.com/averyhb/balancechat/internal/api"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	reminderDescription string
	reminderDue         string
)

var doneStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10"))

var pendingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("11"))

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Manage study reminders",
	Long:  `List, add, and complete reminders kept on the assistant backend. Requires login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemindersList(cmd)
	},
}

var remindersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemindersList(cmd)
	},
}

var remindersAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := authedClient()
		if err != nil {
			return err
		}
		defer cleanup()

		reminder, err := client.CreateReminder(cmdContext(cmd), args[0], reminderDescription, reminderDue)
		if err != nil {
			return fmt.Errorf("failed to create reminder: %w", err)
		}
		fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("✅ Added reminder #%d: %s", reminder.ID, reminder.Title)))
		return nil
	},
}

var remindersDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a reminder as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid reminder id %q", args[0])
		}

		client, cleanup, err := authedClient()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := client.CompleteReminder(cmdContext(cmd), id); err != nil {
			return fmt.Errorf("failed to complete reminder: %w", err)
		}
		fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("✅ Reminder #%d completed", id)))
		return nil
	},
}

func runRemindersList(cmd *cobra.Command) error {
	client, cleanup, err := authedClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reminders, err := client.Reminders(cmdContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to fetch reminders: %w", err)
	}
	displayReminders(reminders)
	return nil
}

func displayReminders(reminders []api.Reminder) {
	if len(reminders) == 0 {
		fmt.Println("No reminders yet. Add one with 'balancechat reminders add <title>'.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("ID")+"\t"+headerStyle.Render("TITLE")+"\t"+headerStyle.Render("DUE")+"\t"+headerStyle.Render("STATUS"))

	for _, r := range reminders {
		status := pendingStyle.Render("pending")
		if r.Completed {
			status = doneStyle.Render("done")
		}
		due := r.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			idStyle.Render(strconv.Itoa(r.ID)),
			titleStyle.Render(r.Title),
			dateStyle.Render(due),
			status,
		)
	}
	w.Flush()
}

// authedClient opens storage, requires a stored token, and returns a
// client carrying it. The cleanup func closes the database.
func authedClient() (*api.Client, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open chat storage: %w", err)
	}

	token, err := store.LoadToken()
	if err != nil || token == "" {
		db.Close()
		return nil, nil, fmt.Errorf("not logged in; run 'balancechat login' first")
	}

	client := newAPIClient(cfg, store)
	return client, func() { db.Close() }, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	remindersCmd.AddCommand(remindersListCmd)
	remindersCmd.AddCommand(remindersAddCmd)
	remindersCmd.AddCommand(remindersDoneCmd)

	remindersAddCmd.Flags().StringVarP(&reminderDescription, "description", "d", "", "Longer description for the reminder")
	remindersAddCmd.Flags().StringVar(&reminderDue, "due", "", "Due date (e.g. 2026-09-15T09:00)")
}
