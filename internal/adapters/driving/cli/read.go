package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quickread-cli/internal/logger"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/docx"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/eml"
)

// LogFileName is where logs go while the full-screen reader is running.
const LogFileName = "quickread.log"

var (
	readTextFile string
	readStdin    bool
	readTitle    string
)

// runReader starts the TUI. Tests replace it.
var runReader = tui.Run

// stdinIsTerminal reports whether stdin is a terminal. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var readCmd = &cobra.Command{
	Use:   "read [url]",
	Short: "Read an article",
	Long: `Read an article one word at a time.

Without a URL the frontmost browser tab is used (macOS). If the page cannot
be extracted, text on the clipboard is read instead when it holds enough words.

Examples:
  quickread read
  quickread read https://example.com/post
  quickread read --text-file notes.md
  quickread read --text-file newsletter.eml
  pbpaste | quickread read --stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Read the text on the clipboard",
	Args:  cobra.NoArgs,
	RunE:  runPaste,
}

var resumeCmd = &cobra.Command{
	Use:   "resume [session-id]",
	Short: "Resume a saved reading session",
	Long: `Resume a saved reading session where it was left.

Without an ID the most recent unfinished session is resumed. Playback
starts a configurable number of sentences before the saved position.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResume,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, readCmd} {
		c.Flags().StringVarP(&readTextFile, "text-file", "f", "", "read a local text, markdown, html, docx or eml file")
		c.Flags().BoolVar(&readStdin, "stdin", false, "read text piped on stdin")
		c.Flags().StringVarP(&readTitle, "title", "t", "", "title for text from --stdin")
	}
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if captureService == nil || readerService == nil {
		return errNotConfigured
	}

	var opts []tea.ProgramOption
	var capture func(ctx context.Context) (*domain.Article, error)

	switch {
	case readTextFile != "" && readStdin:
		return errors.New("--text-file and --stdin cannot be combined")

	case readTextFile != "":
		raw, err := loadTextFile(readTextFile)
		if err != nil {
			return err
		}
		capture = func(ctx context.Context) (*domain.Article, error) {
			return captureService.FromDocument(ctx, raw)
		}

	case readStdin:
		if stdinIsTerminal() {
			return errors.New("--stdin needs text piped in, for example: pbpaste | quickread read --stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text := string(data)
		capture = func(ctx context.Context) (*domain.Article, error) {
			return captureService.FromText(ctx, readTitle, text)
		}
		// Keys come from the terminal since stdin was consumed.
		opts = append(opts, tea.WithInputTTY())

	case len(args) == 1:
		url := args[0]
		capture = func(ctx context.Context) (*domain.Article, error) {
			return captureService.CaptureURL(ctx, url)
		}

	default:
		capture = captureService.CaptureActiveTab
	}

	return startReader(cmd, openWith(capture), opts...)
}

func runPaste(cmd *cobra.Command, _ []string) error {
	if captureService == nil || readerService == nil {
		return errNotConfigured
	}
	return startReader(cmd, openWith(captureService.FromClipboard))
}

func runResume(cmd *cobra.Command, args []string) error {
	if readerService == nil || historyService == nil {
		return errNotConfigured
	}
	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	// Check up front so a missing session is reported without a screen flash.
	if id == "" {
		session, err := historyService.MostRecentUnfinished(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if session == nil {
			return errors.New("nothing to resume")
		}
		id = session.ID
	} else if _, err := historyService.Get(cmd.Context(), id); err != nil {
		return fmt.Errorf("session %s: %w", id, err)
	}

	return startReader(cmd, func(ctx context.Context, c driven.Clock) (*driving.Reading, error) {
		return readerService.Resume(ctx, id, c)
	})
}

// openWith turns a capture step into an Opener that starts at the first word.
func openWith(capture func(ctx context.Context) (*domain.Article, error)) tui.Opener {
	return func(ctx context.Context, c driven.Clock) (*driving.Reading, error) {
		article, err := capture(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("opened %q (%d words)", article.Title, article.WordCount())
		return readerService.Open(article, 0, c)
	}
}

// startReader runs the TUI with opener. A nil opener shows the history list.
func startReader(cmd *cobra.Command, opener tui.Opener, opts ...tea.ProgramOption) error {
	ports := tui.NewPorts(readerService, historyService, settingsService)

	restore, err := logger.RedirectToFile(logPath())
	if err != nil {
		return err
	}
	defer restore()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	if watchConfig != nil {
		go func() {
			if err := watchConfig(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Debug("config watcher stopped: %v", err)
			}
		}()
	}
	return runReader(ctx, ports, realtimeClock, opener, opts...)
}

func realtimeClock(dispatch func(func())) driven.Clock {
	return clock.NewRealtime(dispatch)
}

func logPath() string {
	dir := configDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), LogFileName)
		}
		dir = filepath.Join(home, ".quickread")
	}
	return filepath.Join(dir, LogFileName)
}

// loadTextFile reads a local file into a RawDocument typed by extension.
func loadTextFile(path string) (*domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := "text/plain"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		mimeType = "text/markdown"
	case ".html", ".htm":
		mimeType = "text/html"
	case ".docx":
		mimeType = docx.MIMEType
	case ".eml":
		mimeType = eml.MIMEType
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &domain.RawDocument{
		URI:       "file://" + filepath.ToSlash(abs),
		MIMEType:  mimeType,
		Content:   content,
		TitleHint: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}, nil
}
