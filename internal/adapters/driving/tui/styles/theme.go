// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the reader palette. Each colour carries a light and a dark
// variant; lipgloss picks one from the terminal background.
type Theme struct {
	// Accent marks titles, the countdown and the selected row.
	Accent lipgloss.AdaptiveColor

	// Highlight is the secondary accent used for subtitles.
	Highlight lipgloss.AdaptiveColor

	// Text is the default text colour.
	Text lipgloss.AdaptiveColor

	// Word colours the letters of the flashed word around the focus letter.
	Word lipgloss.AdaptiveColor

	// Focus colours the fixation letter.
	Focus lipgloss.AdaptiveColor

	// Guide colours the fixation markers and borders.
	Guide lipgloss.AdaptiveColor

	// Muted is for hints and secondary information.
	Muted lipgloss.AdaptiveColor

	// Bar is the status bar background.
	Bar lipgloss.AdaptiveColor

	// Success, Warning and Error colour status messages.
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
}

// DefaultTheme returns the reader palette: a dimmed word with a red focus
// letter, purple and blue accents.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"},
		Highlight: lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"},
		Text:      lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"},
		Word:      lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A3A3A3"},
		Focus:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
		Guide:     lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		Muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Bar:       lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"},
		Success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"},
		Error:     lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted list row.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// Word style for the flashed word.
	Word lipgloss.Style

	// Focus style for the fixation letter of the flashed word.
	Focus lipgloss.Style

	// Guide style for the fixation markers above and below the word.
	Guide lipgloss.Style

	// Countdown style for the 3-2-1 countdown.
	Countdown lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Success:  lipgloss.NewStyle().Foreground(theme.Success),
		Warning:  lipgloss.NewStyle().Foreground(theme.Warning),

		Word:      lipgloss.NewStyle().Foreground(theme.Word),
		Focus:     lipgloss.NewStyle().Bold(true).Foreground(theme.Focus),
		Guide:     lipgloss.NewStyle().Foreground(theme.Guide),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Guide),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
