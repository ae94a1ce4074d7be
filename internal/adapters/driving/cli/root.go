// Package cli provides the cobra commands for quickread.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services holds the core services the commands drive.
type Services struct {
	Capture  driving.CaptureService
	Reader   driving.ReaderService
	History  driving.HistoryService
	Settings driving.SettingsService

	// WatchConfig, if set, reloads settings on file changes until ctx
	// is cancelled. Long-running commands start it in the background.
	WatchConfig func(ctx context.Context) error
}

// Bootstrap builds the services for a config directory. The returned
// cleanup runs once the command has finished.
type Bootstrap func(configDir string) (*Services, func(), error)

var (
	captureService  driving.CaptureService
	readerService   driving.ReaderService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	watchConfig     func(ctx context.Context) error

	bootstrap Bootstrap
	cleanup   func()
)

// Global flags.
var (
	verbose   bool
	configDir string
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "quickread [url]",
	Short: "Speed-read web articles in the terminal",
	Long: `quickread shows an article one word at a time at a fixed rate (RSVP),
with the focus letter of each word held on the same column.

With no arguments it reads the article in the frontmost browser tab.
Pass a URL to read that page instead, or use "paste" for clipboard text.
Reading positions are saved and can be picked up again with "resume".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
		return initServices()
	},
	RunE: runRead,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.quickread)")
	rootCmd.Version = version
}

// SetServices injects the services directly, bypassing Bootstrap.
func SetServices(s Services) {
	captureService = s.Capture
	readerService = s.Reader
	historyService = s.History
	settingsService = s.Settings
	watchConfig = s.WatchConfig
}

// SetBootstrap registers the function that builds services once flags
// are parsed.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func initServices() error {
	if bootstrap == nil {
		return nil
	}
	services, done, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(*services)
	cleanup = done
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.Execute()
}
