package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingReaderService,
		ErrMissingHistoryService,
		ErrMissingSettingsService,
		ErrMissingClock,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingReaderService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingReaderService.Error(), "reader service")
}

func TestErrMissingHistoryService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingHistoryService.Error(), "history service")
}

func TestErrMissingClock_Message(t *testing.T) {
	assert.Contains(t, ErrMissingClock.Error(), "clock")
}
