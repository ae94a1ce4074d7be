package domain

import (
	"errors"
	"fmt"
)

// DefaultUserAgent is a browser-like user agent used for page fetches.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"

// ReadingSettings holds playback rate configuration.
type ReadingSettings struct {
	// RateWPM is the default words-per-minute rate.
	RateWPM int

	// MinRateWPM is the lowest allowed rate.
	MinRateWPM int

	// MaxRateWPM is the highest allowed rate.
	MaxRateWPM int

	// RateStep is the increment used by increase/decrease.
	RateStep int
}

// ClampRate bounds wpm to [MinRateWPM, MaxRateWPM].
func (r ReadingSettings) ClampRate(wpm int) int {
	return min(max(wpm, r.MinRateWPM), r.MaxRateWPM)
}

// CountdownSettings controls the 3-2-1 countdown before playback.
type CountdownSettings struct {
	// Enabled shows the countdown on a fresh start.
	Enabled bool

	// OnResume also shows the countdown when resuming mid-article.
	// Has no effect unless Enabled is set.
	OnResume bool
}

// ShouldCount reports whether a session should count down before playing.
func (c CountdownSettings) ShouldCount(resume bool) bool {
	if resume {
		return c.Enabled && c.OnResume
	}
	return c.Enabled
}

// ResumeSettings controls resume positioning.
type ResumeSettings struct {
	// RewindSentences is how many sentences to jump back on resume.
	// Zero disables rewinding.
	RewindSentences int
}

// HistorySettings controls the session history.
type HistorySettings struct {
	// RetentionDays drops sessions older than this many days. Zero keeps forever.
	RetentionDays int

	// MaxSessions caps the number of stored sessions.
	MaxSessions int
}

// FetchSettings controls page retrieval.
type FetchSettings struct {
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int

	// UserAgent is sent with every request.
	UserAgent string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Reading holds playback rate settings.
	Reading ReadingSettings

	// Countdown holds countdown settings.
	Countdown CountdownSettings

	// Resume holds resume settings.
	Resume ResumeSettings

	// History holds history retention settings.
	History HistorySettings

	// Fetch holds page retrieval settings.
	Fetch FetchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Reading: ReadingSettings{
			RateWPM:    400,
			MinRateWPM: 200,
			MaxRateWPM: 800,
			RateStep:   50,
		},
		Countdown: CountdownSettings{
			Enabled:  true,
			OnResume: false,
		},
		Resume: ResumeSettings{
			RewindSentences: 1,
		},
		History: HistorySettings{
			RetentionDays: 30,
			MaxSessions:   100,
		},
		Fetch: FetchSettings{
			TimeoutSeconds: 15,
			UserAgent:      DefaultUserAgent,
		},
	}
}

// Validate checks that settings are internally consistent.
func (s AppSettings) Validate() error {
	var errs []error
	if s.Reading.MinRateWPM <= 0 {
		errs = append(errs, fmt.Errorf("minimum rate must be positive, got %d", s.Reading.MinRateWPM))
	}
	if s.Reading.MaxRateWPM < s.Reading.MinRateWPM {
		errs = append(errs, fmt.Errorf("maximum rate %d is below minimum rate %d",
			s.Reading.MaxRateWPM, s.Reading.MinRateWPM))
	}
	if s.Reading.RateWPM < s.Reading.MinRateWPM || s.Reading.RateWPM > s.Reading.MaxRateWPM {
		errs = append(errs, fmt.Errorf("rate %d is outside %d-%d wpm",
			s.Reading.RateWPM, s.Reading.MinRateWPM, s.Reading.MaxRateWPM))
	}
	if s.Reading.RateStep <= 0 {
		errs = append(errs, fmt.Errorf("rate step must be positive, got %d", s.Reading.RateStep))
	}
	if s.Resume.RewindSentences < 0 {
		errs = append(errs, fmt.Errorf("rewind sentences cannot be negative, got %d", s.Resume.RewindSentences))
	}
	if s.History.RetentionDays < 0 {
		errs = append(errs, fmt.Errorf("retention days cannot be negative, got %d", s.History.RetentionDays))
	}
	if s.History.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("max sessions must be positive, got %d", s.History.MaxSessions))
	}
	if s.Fetch.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("fetch timeout must be positive, got %d", s.Fetch.TimeoutSeconds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}
