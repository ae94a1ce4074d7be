// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Dispatch carries a clock callback onto the event loop.
// The app runs Fn inside Update so the engine is only touched there.
type Dispatch struct {
	Fn func()
}

// ReadingOpened carries the result of opening or resuming an article.
type ReadingOpened struct {
	Reading *driving.Reading
	Err     error
}

// ResumeRequested asks the app to resume a saved session.
type ResumeRequested struct {
	SessionID string
}

// Dismissed is sent once the reading position has been saved.
type Dismissed struct {
	Session *domain.ReadingSession
	Err     error
}

// SessionsLoaded carries the history list.
type SessionsLoaded struct {
	Sessions []domain.ReadingSession
	Err      error
}

// SessionRemoved is sent after a history entry was deleted.
type SessionRemoved struct {
	ID  string
	Err error
}

// RatePersisted is sent after a rate change was written to settings.
type RatePersisted struct {
	WPM int
	Err error
}

// SettingsLoaded carries the current settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved is sent after a settings change was written.
type SettingsSaved struct {
	Err error
}

// ViewChanged requests a switch to another view.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred is sent when an operation fails.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLoading shows progress while an article is captured.
	ViewLoading ViewType = iota
	// ViewReader is the RSVP reader.
	ViewReader
	// ViewHistory lists saved sessions.
	ViewHistory
	// ViewSettings edits reading settings.
	ViewSettings
	// ViewError shows a fatal error.
	ViewError
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewReader:
		return "reader"
	case ViewHistory:
		return "history"
	case ViewSettings:
		return "settings"
	case ViewError:
		return "error"
	default:
		return "unknown"
	}
}
