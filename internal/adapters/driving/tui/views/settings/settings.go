// Package settings provides the reading settings view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Item identifies an editable setting.
type Item int

const (
	ItemRate Item = iota
	ItemCountdown
	ItemCountdownOnResume
	ItemRewind
	ItemRetention
	itemCount
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyLeft  = "left"
	keyRight = "right"
	keyEnter = "enter"
)

// View is the reading settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	selected Item

	width  int
	height int
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		v.err = msg.Err
		// Reload even on failure so the screen shows what was stored.
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case keyDown, "j":
		if v.selected < itemCount-1 {
			v.selected++
		}
		return v, nil
	}

	if v.settings == nil {
		return v, nil
	}

	switch msg.String() {
	case keyLeft, "h", "-":
		return v, v.adjust(-1)
	case keyRight, "l", "+":
		return v, v.adjust(1)
	case keyEnter, " ":
		return v, v.toggle()
	case "R":
		return v, v.save(func(s driving.SettingsService) error { return s.Reset() })
	}
	return v, nil
}

// adjust steps the selected numeric setting by dir.
func (v *View) adjust(dir int) tea.Cmd {
	current := *v.settings
	switch v.selected {
	case ItemRate:
		wpm := current.Reading.RateWPM + dir*current.Reading.RateStep
		return v.save(func(s driving.SettingsService) error { return s.SetRate(wpm) })
	case ItemRewind:
		count := max(0, current.Resume.RewindSentences+dir)
		return v.save(func(s driving.SettingsService) error { return s.SetRewindSentences(count) })
	case ItemRetention:
		days := max(0, current.History.RetentionDays+dir)
		return v.save(func(s driving.SettingsService) error { return s.SetHistoryRetention(days) })
	case ItemCountdown, ItemCountdownOnResume:
		return v.toggle()
	}
	return nil
}

// toggle flips the selected boolean setting.
func (v *View) toggle() tea.Cmd {
	countdown := v.settings.Countdown
	switch v.selected {
	case ItemCountdown:
		return v.save(func(s driving.SettingsService) error {
			return s.SetCountdown(!countdown.Enabled, countdown.OnResume)
		})
	case ItemCountdownOnResume:
		return v.save(func(s driving.SettingsService) error {
			return s.SetCountdown(countdown.Enabled, !countdown.OnResume)
		})
	}
	return nil
}

func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: apply(v.settingsService)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	for i, item := range v.items() {
		indicator := "  "
		if Item(i) == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%-22s %s", indicator, item.label, item.value)
		if Item(i) == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("↑/↓ select · ←/→ change · enter toggle · R reset · esc back"))
	return b.String()
}

type item struct {
	label string
	value string
}

func (v *View) items() []item {
	s := v.settings
	retention := "forever"
	if s.History.RetentionDays > 0 {
		retention = fmt.Sprintf("%d days", s.History.RetentionDays)
	}
	return []item{
		{label: "Reading rate", value: fmt.Sprintf("%d wpm (%d-%d)",
			s.Reading.RateWPM, s.Reading.MinRateWPM, s.Reading.MaxRateWPM)},
		{label: "Countdown", value: onOff(s.Countdown.Enabled)},
		{label: "Countdown on resume", value: onOff(s.Countdown.OnResume)},
		{label: "Rewind on resume", value: fmt.Sprintf("%d sentences", s.Resume.RewindSentences)},
		{label: "Keep history", value: retention},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Selected returns the selected item.
func (v *View) Selected() Item {
	return v.selected
}
