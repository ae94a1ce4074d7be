package driving

import "github.com/custodia-labs/quickread-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetRate updates the default reading rate, clamped to the configured range.
	SetRate(wpm int) error

	// SetCountdown configures the countdown for fresh starts and resumes.
	SetCountdown(enabled, onResume bool) error

	// SetRewindSentences sets how many sentences to rewind on resume.
	SetRewindSentences(count int) error

	// SetHistoryRetention sets the history retention in days (0 = unlimited).
	SetHistoryRetention(days int) error

	// Reset restores every setting to its default.
	Reset() error

	// Validate checks if current settings are valid.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
