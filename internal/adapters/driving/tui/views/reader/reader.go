// Package reader provides the RSVP reading view for the TUI.
package reader

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/core/playback"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// View hosts a playback engine and renders the last Snapshot it published.
// Every engine call happens inside Update, on the event loop.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	readerService driving.ReaderService
	reading       *driving.Reading
	snap          playback.Snapshot
	unsubscribe   func()
	ctx           context.Context

	width    int
	height   int
	showHelp bool
}

// NewView creates a new reader view.
func NewView(s *styles.Styles, km *keymap.KeyMap, readerService driving.ReaderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:        s,
		keymap:        km,
		statusbar:     status.NewBar(s, km),
		readerService: readerService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetReading attaches an opened reading and subscribes to its engine.
// Any previously attached reading is detached first.
func (v *View) SetReading(reading *driving.Reading) {
	v.detach()
	v.reading = reading
	v.showHelp = false
	v.statusbar.SetMessage("", false)
	if reading == nil {
		return
	}
	v.onSnapshot(reading.Engine.Snapshot())
	v.unsubscribe = reading.Engine.Subscribe(v.onSnapshot)
}

func (v *View) onSnapshot(snap playback.Snapshot) {
	v.snap = snap
	v.statusbar.SetSnapshot(snap)
}

func (v *View) detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	v.snap = playback.Snapshot{}
}

// Reading returns the attached reading, or nil.
func (v *View) Reading() *driving.Reading {
	return v.reading
}

// Update handles messages for the reader view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.RatePersisted:
		if msg.Err != nil {
			v.statusbar.SetMessage(fmt.Sprintf("could not save rate: %v", msg.Err), true)
		}
		return v, nil
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.reading == nil {
		return v, nil
	}
	engine := v.reading.Engine

	switch {
	case key.Matches(msg, v.keymap.Dismiss), key.Matches(msg, v.keymap.Quit):
		return v, v.Dismiss()
	case key.Matches(msg, v.keymap.Toggle):
		engine.Toggle()
	case key.Matches(msg, v.keymap.SkipBack):
		engine.SkipBackward(0)
	case key.Matches(msg, v.keymap.SkipForward):
		engine.SkipForward(0)
	case key.Matches(msg, v.keymap.Restart):
		engine.SeekTo(0)
	case key.Matches(msg, v.keymap.Faster):
		engine.IncreaseRate()
		return v, v.persistRate(engine.Rate())
	case key.Matches(msg, v.keymap.Slower):
		engine.DecreaseRate()
		return v, v.persistRate(engine.Rate())
	case key.Matches(msg, v.keymap.Help):
		v.showHelp = !v.showHelp
	}
	return v, nil
}

// Dismiss closes the engine and saves the position. The save happens here
// rather than in a command so the engine is never touched off the loop.
func (v *View) Dismiss() tea.Cmd {
	if v.reading == nil {
		return nil
	}
	v.detach()
	session, err := v.readerService.Dismiss(v.ctx, v.reading)
	v.reading = nil
	return func() tea.Msg {
		return messages.Dismissed{Session: session, Err: err}
	}
}

func (v *View) persistRate(wpm int) tea.Cmd {
	return func() tea.Msg {
		return messages.RatePersisted{WPM: wpm, Err: v.readerService.PersistRate(wpm)}
	}
}

// View renders the reader.
func (v *View) View() string {
	if v.reading == nil {
		return ""
	}
	snap := v.snap

	var body string
	switch snap.State {
	case playback.StateReady:
		body = v.renderReady(snap)
	case playback.StateCounting:
		body = v.renderCountdown(snap)
	default:
		body = v.renderWord(snap)
	}

	if v.showHelp {
		body += "\n\n" + v.renderHelp()
	}

	bodyHeight := max(1, v.height-1)
	page := lipgloss.Place(v.width, bodyHeight, lipgloss.Left, lipgloss.Center, body)
	return page + "\n" + v.statusbar.View()
}

func (v *View) renderReady(snap playback.Snapshot) string {
	article := v.reading.Article
	lines := []string{
		v.styles.Title.Render(article.Title),
		v.styles.Muted.Render(fmt.Sprintf("%s words · about %s at %d wpm",
			humanize.Comma(int64(article.WordCount())),
			status.FormatDuration(snap.TimeRemaining()), snap.RateWPM)),
		"",
	}
	if snap.Resume {
		lines = append(lines, v.styles.Normal.Render(
			fmt.Sprintf("Resuming at word %d of %d", snap.Index+1, snap.WordCount)))
	}
	lines = append(lines, v.styles.Help.Render("Press space to start"))

	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(v.width, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderCountdown(snap playback.Snapshot) string {
	text := strconv.Itoa(snap.Countdown)
	if snap.ShowGo() {
		text = "GO"
	}
	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.styles.Countdown.Render(text))
}

func (v *View) renderWord(snap playback.Snapshot) string {
	column := v.width / 2
	guide := strings.Repeat(" ", column) + v.styles.Guide.Render("│")
	word := RenderWord(v.styles, snap.Word, snap.ORP, column)

	var hint string
	switch {
	case snap.Finished:
		hint = "Finished. Press r to restart or q to close."
	case snap.State == playback.StatePaused:
		hint = "Paused"
	}
	hint = lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.styles.Muted.Render(hint))

	return strings.Join([]string{guide, word, guide, "", hint}, "\n")
}

func (v *View) renderHelp() string {
	groups := v.keymap.FullHelp()
	rows := make([]string, 0, len(groups))
	for _, group := range groups {
		parts := make([]string, 0, len(group))
		for _, b := range group {
			h := b.Help()
			parts = append(parts, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
		}
		rows = append(rows, strings.Join(parts, "   "))
	}
	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.styles.Help.Render(strings.Join(rows, "\n")))
}

// RenderWord lays out word so that its rune at orp sits on column,
// highlighting that rune.
func RenderWord(s *styles.Styles, word string, orp, column int) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	orp = min(max(orp, 0), len(runes)-1)

	pad := max(0, column-orp)
	return strings.Repeat(" ", pad) +
		s.Word.Render(string(runes[:orp])) +
		s.Focus.Render(string(runes[orp])) +
		s.Word.Render(string(runes[orp+1:]))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
}
