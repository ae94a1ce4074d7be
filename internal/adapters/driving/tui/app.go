package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/views/reader"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Opener captures an article and opens it for reading. It runs as a
// command, off the event loop; the engine it returns is not started.
type Opener func(ctx context.Context, clock driven.Clock) (*driving.Reading, error)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The bubbletea event loop is the only goroutine that touches a playback
// engine. Clock callbacks reach it as messages.Dispatch.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// clock schedules engine timers.
	clock driven.Clock

	// styles holds the TUI styles.
	styles *styles.Styles

	readerView   *reader.View
	historyView  *history.View
	settingsView *settings.View

	// opener, when set, opens one article at startup and the app exits
	// once it is dismissed.
	opener Opener

	// currentView tracks which view is active.
	currentView messages.ViewType

	// quitting is set when ctrl+c arrives while reading; the app exits
	// after the position has been saved.
	quitting bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// Without an opener the app starts on the history list.
func NewApp(ports *Ports, clock driven.Clock) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if clock == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingClock)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		clock:        clock,
		styles:       s,
		readerView:   reader.NewView(s, km, ports.Reader),
		historyView:  history.NewView(s, km, ports.History),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewHistory,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.readerView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// WithOpener makes the app open a single article at startup.
func (a *App) WithOpener(opener Opener) *App {
	a.opener = opener
	if opener != nil {
		a.currentView = messages.ViewLoading
	}
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	start := a.historyView.Init()
	if a.opener != nil {
		start = a.open(a.opener)
	}
	return tea.Batch(
		tea.SetWindowTitle("quickread"),
		start,
	)
}

func (a *App) open(opener Opener) tea.Cmd {
	ctx, clock := a.ctx, a.clock
	return func() tea.Msg {
		reading, err := opener(ctx, clock)
		return messages.ReadingOpened{Reading: reading, Err: err}
	}
}

func (a *App) resume(id string) tea.Cmd {
	return a.open(func(ctx context.Context, clock driven.Clock) (*driving.Reading, error) {
		return a.ports.Reader.Resume(ctx, id, clock)
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case messages.Dispatch:
		if msg.Fn != nil {
			msg.Fn()
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ReadingOpened:
		if msg.Err != nil {
			a.err = msg.Err
			a.currentView = messages.ViewError
			return a, nil
		}
		a.err = nil
		a.readerView.SetReading(msg.Reading)
		a.currentView = messages.ViewReader
		return a, nil

	case messages.ResumeRequested:
		a.currentView = messages.ViewLoading
		return a, a.resume(msg.SessionID)

	case messages.Dismissed:
		if msg.Err != nil {
			a.err = msg.Err
		}
		if a.quitting || a.opener != nil {
			return a, tea.Quit
		}
		a.currentView = messages.ViewHistory
		return a, a.historyView.Load()

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSettings:
			return a, a.settingsView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Load()
		case messages.ViewLoading, messages.ViewReader, messages.ViewError:
		}
		return a, nil

	case messages.SessionsLoaded, messages.SessionRemoved:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.RatePersisted:
		a.readerView, cmd = a.readerView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewReader:
		if msg.Type == tea.KeyCtrlC {
			a.quitting = true
		}
		a.readerView, cmd = a.readerView.Update(msg)
		return a, cmd

	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ViewSettings:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewError:
		if a.opener != nil || msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.err = nil
		a.currentView = messages.ViewHistory
		return a, nil

	case messages.ViewLoading:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}
	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLoading:
		return a.styles.Muted.Render("Fetching article...")
	case messages.ViewReader:
		return a.readerView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewError:
		return a.viewError()
	default:
		return a.historyView.View()
	}
}

func (a *App) viewError() string {
	hint := "Press any key to go back"
	if a.opener != nil {
		hint = "Press any key to exit"
	}
	return a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)) + "\n\n" + a.styles.Help.Render(hint)
}

// ClockFactory builds a clock whose callbacks are handed to dispatch.
type ClockFactory func(dispatch func(func())) driven.Clock

// Run starts the TUI application on a fresh bubbletea program.
// newClock receives the program's dispatch function so timers fire on
// the event loop. A nil opener starts on the history list.
func Run(ctx context.Context, ports *Ports, newClock ClockFactory, opener Opener, opts ...tea.ProgramOption) error {
	var p *tea.Program
	clock := newClock(func(fn func()) {
		p.Send(messages.Dispatch{Fn: fn})
	})

	app, err := NewApp(ports, clock)
	if err != nil {
		return err
	}
	app.WithContext(ctx).WithOpener(opener)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p = tea.NewProgram(app, opts...)
	_, err = p.Run()
	if err != nil {
		return err
	}
	return app.Err()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.readerView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.settingsView.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
