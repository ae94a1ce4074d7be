package services

import (
	"fmt"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRateWPM         = "reading.rate_wpm"
	keyMinRateWPM      = "reading.min_rate_wpm"
	keyMaxRateWPM      = "reading.max_rate_wpm"
	keyRateStep        = "reading.rate_step"
	keyCountdown       = "countdown.enabled"
	keyCountdownResume = "countdown.on_resume"
	keyRewindSentences = "resume.rewind_sentences"
	keyRetentionDays   = "history.retention_days"
	keyMaxSessions     = "history.max_sessions"
	keyFetchTimeout    = "fetch.timeout_seconds"
	keyUserAgent       = "fetch.user_agent"
)

// settingsKeys lists every key the service owns, for Reset.
var settingsKeys = []string{
	keyRateWPM, keyMinRateWPM, keyMaxRateWPM, keyRateStep,
	keyCountdown, keyCountdownResume,
	keyRewindSentences,
	keyRetentionDays, keyMaxSessions,
	keyFetchTimeout, keyUserAgent,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Keys missing from the store take their default value.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Reading: domain.ReadingSettings{
			RateWPM:    s.getInt(keyRateWPM, defaults.Reading.RateWPM),
			MinRateWPM: s.getInt(keyMinRateWPM, defaults.Reading.MinRateWPM),
			MaxRateWPM: s.getInt(keyMaxRateWPM, defaults.Reading.MaxRateWPM),
			RateStep:   s.getInt(keyRateStep, defaults.Reading.RateStep),
		},
		Countdown: domain.CountdownSettings{
			Enabled:  s.getBool(keyCountdown, defaults.Countdown.Enabled),
			OnResume: s.getBool(keyCountdownResume, defaults.Countdown.OnResume),
		},
		Resume: domain.ResumeSettings{
			RewindSentences: s.getInt(keyRewindSentences, defaults.Resume.RewindSentences),
		},
		History: domain.HistorySettings{
			RetentionDays: s.getInt(keyRetentionDays, defaults.History.RetentionDays),
			MaxSessions:   s.getInt(keyMaxSessions, defaults.History.MaxSessions),
		},
		Fetch: domain.FetchSettings{
			TimeoutSeconds: s.getInt(keyFetchTimeout, defaults.Fetch.TimeoutSeconds),
			UserAgent:      s.getString(keyUserAgent, defaults.Fetch.UserAgent),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyRateWPM, settings.Reading.RateWPM},
		{keyMinRateWPM, settings.Reading.MinRateWPM},
		{keyMaxRateWPM, settings.Reading.MaxRateWPM},
		{keyRateStep, settings.Reading.RateStep},
		{keyCountdown, settings.Countdown.Enabled},
		{keyCountdownResume, settings.Countdown.OnResume},
		{keyRewindSentences, settings.Resume.RewindSentences},
		{keyRetentionDays, settings.History.RetentionDays},
		{keyMaxSessions, settings.History.MaxSessions},
		{keyFetchTimeout, settings.Fetch.TimeoutSeconds},
		{keyUserAgent, settings.Fetch.UserAgent},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetRate updates the default reading rate, clamped to the configured range.
func (s *SettingsService) SetRate(wpm int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Reading.RateWPM = settings.Reading.ClampRate(wpm)

	if err := s.configStore.Set(keyRateWPM, settings.Reading.RateWPM); err != nil {
		return fmt.Errorf("save %s: %w", keyRateWPM, err)
	}
	return nil
}

// SetCountdown configures the countdown for fresh starts and resumes.
func (s *SettingsService) SetCountdown(enabled, onResume bool) error {
	if err := s.configStore.Set(keyCountdown, enabled); err != nil {
		return fmt.Errorf("save %s: %w", keyCountdown, err)
	}
	if err := s.configStore.Set(keyCountdownResume, onResume); err != nil {
		return fmt.Errorf("save %s: %w", keyCountdownResume, err)
	}
	return nil
}

// SetRewindSentences sets how many sentences to rewind on resume.
func (s *SettingsService) SetRewindSentences(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: rewind sentences cannot be negative, got %d", domain.ErrInvalidInput, count)
	}
	if err := s.configStore.Set(keyRewindSentences, count); err != nil {
		return fmt.Errorf("save %s: %w", keyRewindSentences, err)
	}
	return nil
}

// SetHistoryRetention sets the history retention in days (0 = unlimited).
func (s *SettingsService) SetHistoryRetention(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: retention days cannot be negative, got %d", domain.ErrInvalidInput, days)
	}
	if err := s.configStore.Set(keyRetentionDays, days); err != nil {
		return fmt.Errorf("save %s: %w", keyRetentionDays, err)
	}
	return nil
}

// Reset restores every setting to its default.
func (s *SettingsService) Reset() error {
	for _, key := range settingsKeys {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt treats a stored zero as a real value; only a missing key takes the default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
