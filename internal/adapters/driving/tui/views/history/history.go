// Package history provides the saved-session browser for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// View lists saved reading sessions.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	sessions *list.SessionList

	historyService driving.HistoryService
	ctx            context.Context

	message string
	isError bool
	loaded  bool

	width  int
	height int
}

// NewView creates a new history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:         s,
		keymap:         km,
		sessions:       list.NewSessionList(s),
		historyService: historyService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the session list.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load returns a command that fetches the session list.
func (v *View) Load() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.SessionsLoaded{Err: ErrNoHistoryService}
		}
		sessions, err := v.historyService.List(v.ctx)
		return messages.SessionsLoaded{Sessions: sessions, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SessionsLoaded:
		v.loaded = true
		if msg.Err != nil {
			v.setMessage(fmt.Sprintf("could not load history: %v", msg.Err), true)
			return v, nil
		}
		v.sessions.SetSessions(msg.Sessions)
		return v, nil

	case messages.SessionRemoved:
		if msg.Err != nil {
			v.setMessage(fmt.Sprintf("could not remove session: %v", msg.Err), true)
			return v, nil
		}
		v.sessions.Remove(msg.ID)
		v.setMessage("Session removed", false)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		v.sessions.MoveUp()
	case key.Matches(msg, v.keymap.Down):
		v.sessions.MoveDown()
	case key.Matches(msg, v.keymap.Select):
		if session := v.sessions.SelectedSession(); session != nil {
			id := session.ID
			return v, func() tea.Msg {
				return messages.ResumeRequested{SessionID: id}
			}
		}
	case key.Matches(msg, v.keymap.Remove):
		if session := v.sessions.SelectedSession(); session != nil {
			return v, v.remove(session.ID)
		}
	case key.Matches(msg, v.keymap.Settings):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSettings}
		}
	case key.Matches(msg, v.keymap.Dismiss), key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *View) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.SessionRemoved{ID: id, Err: ErrNoHistoryService}
		}
		return messages.SessionRemoved{ID: id, Err: v.historyService.Remove(v.ctx, id)}
	}
}

func (v *View) setMessage(msg string, isError bool) {
	v.message = msg
	v.isError = isError
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("QuickRead"))
	b.WriteString("\n\n")

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading history..."))
	} else {
		b.WriteString(v.sessions.View())
	}
	b.WriteString("\n\n")

	if v.message != "" {
		if v.isError {
			b.WriteString(v.styles.Error.Render(v.message))
		} else {
			b.WriteString(v.styles.Success.Render(v.message))
		}
		b.WriteString("\n")
	}

	hints := make([]string, 0, len(v.keymap.HistoryHelp()))
	for _, binding := range v.keymap.HistoryHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	b.WriteString(v.styles.Help.Render(strings.Join(hints, " · ")))

	return b.String()
}

// Count returns the number of listed sessions.
func (v *View) Count() int {
	return v.sessions.Count()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.sessions.SetDimensions(width, max(4, height-6))
}
