package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyClearYes bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved reading sessions",
	Long: `Open the saved-session browser, or manage history with a subcommand.

Sessions older than the retention window are dropped automatically.`,
	Args: cobra.NoArgs,
	RunE: runHistoryBrowse,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <session-id>",
	Short: "Remove a saved session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved session",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyClearCmd.Flags().BoolVarP(&historyClearYes, "yes", "y", false, "skip confirmation")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryBrowse(cmd *cobra.Command, _ []string) error {
	if readerService == nil || historyService == nil || settingsService == nil {
		return errNotConfigured
	}
	return startReader(cmd, nil)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	sessions, err := historyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(sessions) == 0 {
		cmd.Println("No saved sessions.")
		return nil
	}

	now := time.Now()
	cmd.Printf("Saved sessions (%d):\n\n", len(sessions))
	for i := range sessions {
		s := &sessions[i]
		title := s.Article.Title
		if title == "" {
			title = "Untitled"
		}
		status := fmt.Sprintf("%d%%", s.ProgressPercentage())
		if s.IsComplete() {
			status = "finished"
		}
		cmd.Printf("  %s  %s\n", s.ID, title)
		cmd.Printf("      %s · %s words · %s · %s\n",
			s.Article.URL,
			humanize.Comma(int64(s.Article.WordCount())),
			status,
			humanize.RelTime(s.LastReadAt, now, "ago", "from now"))
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	cmd.Printf("Removed session %s\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if !historyClearYes {
		cmd.Print("Remove every saved session? [y/N] ")
		answer := strings.ToLower(readLine(bufio.NewReader(cmd.InOrStdin())))
		if answer != "y" && answer != "yes" {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	if err := historyService.ClearAll(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
