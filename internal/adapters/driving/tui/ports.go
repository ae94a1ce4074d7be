// Package tui provides the interactive terminal reader for quickread.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reader opens articles for playback and saves positions.
	Reader driving.ReaderService

	// History lists and removes saved sessions.
	History driving.HistoryService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	reader driving.ReaderService,
	history driving.HistoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Reader:   reader,
		History:  history,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Reader == nil {
		return ErrMissingReaderService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
