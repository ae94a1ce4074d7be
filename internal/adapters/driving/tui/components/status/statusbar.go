// Package status provides the reader status bar.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/core/playback"
)

// Bar displays playback progress, rate and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	snapshot playback.Snapshot
	message  string
	isError  bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderHints(s.keymap.ReaderHelp())

	padding := max(1, s.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (s *Bar) renderLeft() string {
	if s.message != "" {
		if s.isError {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Muted.Render(s.message)
	}

	snap := s.snapshot
	label := stateLabel(snap)
	stats := fmt.Sprintf("%d%% · %d wpm · %s left",
		int(snap.Progress()*100), snap.RateWPM, FormatDuration(snap.TimeRemaining()))
	return s.styles.Normal.Render(label) + "  " + s.styles.Muted.Render(stats)
}

func (s *Bar) renderHints(bindings []key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func stateLabel(snap playback.Snapshot) string {
	switch {
	case snap.Finished:
		return "Finished"
	case snap.State == playback.StateReady && snap.Resume:
		return "Resume"
	default:
		// Title-case the state name.
		name := snap.State.String()
		return strings.ToUpper(name[:1]) + name[1:]
	}
}

// FormatDuration renders d as m:ss, or h:mm:ss from one hour up.
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	h, m, sec := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// SetSnapshot updates the playback figures shown.
func (s *Bar) SetSnapshot(snap playback.Snapshot) {
	s.snapshot = snap
}

// SetMessage shows a transient message in place of the playback figures.
// An empty message restores them.
func (s *Bar) SetMessage(message string, isError bool) {
	s.message = message
	s.isError = isError
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
