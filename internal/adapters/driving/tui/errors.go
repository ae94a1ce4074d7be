package tui

import "errors"

// ErrMissingReaderService is returned when the reader service is not provided.
var ErrMissingReaderService = errors.New("tui: reader service is required")

// ErrMissingHistoryService is returned when the history service is not provided.
var ErrMissingHistoryService = errors.New("tui: history service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingClock is returned when no clock is provided.
var ErrMissingClock = errors.New("tui: clock is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
