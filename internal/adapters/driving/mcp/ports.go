package mcp

import (
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Capture extracts articles from URLs.
	Capture driving.CaptureService

	// History lists saved reading sessions.
	History driving.HistoryService

	// Settings exposes the current settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Capture == nil {
		return ErrMissingCaptureService
	}
	// History and Settings are optional
	return nil
}
