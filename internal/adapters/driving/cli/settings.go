package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	settingsOnResume string
	settingsResetYes bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the reading rate, countdown, resume rewind and
history retention.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsRateCmd = &cobra.Command{
	Use:   "rate <wpm>",
	Short: "Set the default reading rate",
	Long: `Set the default reading rate in words per minute.

The value is clamped to the configured minimum and maximum rates.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsRate,
}

var settingsCountdownCmd = &cobra.Command{
	Use:   "countdown <on|off>",
	Short: "Enable or disable the 3-2-1 countdown",
	Long: `Enable or disable the countdown shown before playback starts.

Use --on-resume to control the countdown for resumed sessions separately.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsCountdown,
}

var settingsRewindCmd = &cobra.Command{
	Use:   "rewind <sentences>",
	Short: "Set how many sentences to rewind on resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRewind,
}

var settingsRetentionCmd = &cobra.Command{
	Use:   "retention <days>",
	Short: "Set how many days history is kept (0 keeps it forever)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRetention,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCountdownCmd.Flags().StringVar(&settingsOnResume, "on-resume", "", "countdown on resume (on|off)")
	settingsResetCmd.Flags().BoolVarP(&settingsResetYes, "yes", "y", false, "skip confirmation")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsRateCmd)
	settingsCmd.AddCommand(settingsCountdownCmd)
	settingsCmd.AddCommand(settingsRewindCmd)
	settingsCmd.AddCommand(settingsRetentionCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Reading]")
	cmd.Printf("  Rate: %d wpm\n", settings.Reading.RateWPM)
	cmd.Printf("  Range: %d-%d wpm (step %d)\n",
		settings.Reading.MinRateWPM, settings.Reading.MaxRateWPM, settings.Reading.RateStep)
	cmd.Println()

	cmd.Println("[Countdown]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Countdown.Enabled))
	cmd.Printf("  On resume: %s\n", yesNo(settings.Countdown.OnResume))
	cmd.Println()

	cmd.Println("[Resume]")
	cmd.Printf("  Rewind: %d sentences\n", settings.Resume.RewindSentences)
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.RetentionDays > 0 {
		cmd.Printf("  Retention: %d days\n", settings.History.RetentionDays)
	} else {
		cmd.Println("  Retention: forever")
	}
	cmd.Printf("  Max sessions: %d\n", settings.History.MaxSessions)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Timeout: %ds\n", settings.Fetch.TimeoutSeconds)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'quickread settings reset' to restore defaults.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsRate(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	wpm, err := parseCount(args[0], "rate")
	if err != nil {
		return err
	}
	if err := settingsService.SetRate(wpm); err != nil {
		return fmt.Errorf("failed to set rate: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Reading rate set to %d wpm\n", settings.Reading.RateWPM)
	return nil
}

func runSettingsCountdown(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	onResume := settings.Countdown.OnResume
	if settingsOnResume != "" {
		if onResume, err = parseOnOff(settingsOnResume); err != nil {
			return err
		}
	}

	if err := settingsService.SetCountdown(enabled, onResume); err != nil {
		return fmt.Errorf("failed to set countdown: %w", err)
	}
	cmd.Printf("Countdown: %s (on resume: %s)\n", onOffLabel(enabled), onOffLabel(onResume))
	return nil
}

func runSettingsRewind(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	count, err := parseCount(args[0], "sentence count")
	if err != nil {
		return err
	}
	if err := settingsService.SetRewindSentences(count); err != nil {
		return fmt.Errorf("failed to set rewind: %w", err)
	}
	cmd.Printf("Resume rewinds %d sentences\n", count)
	return nil
}

func runSettingsRetention(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	days, err := parseCount(args[0], "retention")
	if err != nil {
		return err
	}
	if err := settingsService.SetHistoryRetention(days); err != nil {
		return fmt.Errorf("failed to set retention: %w", err)
	}
	if days == 0 {
		cmd.Println("History is kept forever")
	} else {
		cmd.Printf("History is kept for %d days\n", days)
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if !settingsResetYes {
		cmd.Print("Restore default settings? [y/N] ")
		answer := strings.ToLower(readLine(bufio.NewReader(cmd.InOrStdin())))
		if answer != "y" && answer != "yes" {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseCount(input, what string) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a whole number of zero or more", what, input)
	}
	return val, nil
}

func parseOnOff(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "on", "yes", "true", "1":
		return true, nil
	case "off", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q: use on or off", input)
}

func onOffLabel(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
