// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application without saving.
	Quit key.Binding

	// Help toggles the full key list.
	Help key.Binding

	// Toggle begins playback, or pauses and resumes it.
	Toggle key.Binding

	// SkipBack jumps back a few words.
	SkipBack key.Binding

	// SkipForward jumps ahead a few words.
	SkipForward key.Binding

	// Faster raises the rate by one step.
	Faster key.Binding

	// Slower lowers the rate by one step.
	Slower key.Binding

	// Restart seeks to the first word.
	Restart key.Binding

	// Dismiss saves the position and closes the reader.
	Dismiss key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the selected entry.
	Select key.Binding

	// Remove deletes the selected entry.
	Remove key.Binding

	// Settings opens the settings view.
	Settings key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "play/pause"),
		),
		SkipBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		SkipForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward"),
		),
		Faster: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
	}
}

// ReaderHelp returns keybindings shown while reading.
func (k *KeyMap) ReaderHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Faster, k.Slower, k.Dismiss}
}

// HistoryHelp returns keybindings shown in the history list.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Select, k.Remove, k.Settings, k.Dismiss}
}

// FullHelp returns the full list of reader keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Restart},
		{k.SkipBack, k.SkipForward},
		{k.Faster, k.Slower},
		{k.Help, k.Dismiss, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
