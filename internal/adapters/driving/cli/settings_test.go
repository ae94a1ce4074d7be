package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Rate: 400 wpm")
	assert.Contains(t, out, "Range: 200-800 wpm (step 50)")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "On resume: no")
	assert.Contains(t, out, "Rewind: 1 sentences")
	assert.Contains(t, out, "Retention: 30 days")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsShow_InvalidWarns(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testMocks.settings.invalid = errors.New("rate 900 is outside 200-800 wpm")

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: rate 900")
	assert.Contains(t, out, "quickread settings reset")
}

func TestSettingsShow_RetentionForever(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testMocks.settings.settings.History.RetentionDays = 0

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Retention: forever")
}

func TestSettingsRate_Clamped(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "rate", "1200")

	require.NoError(t, err)
	assert.Equal(t, 800, testMocks.settings.settings.Reading.RateWPM)
	assert.Contains(t, out, "Reading rate set to 800 wpm")
}

func TestSettingsRate_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "rate", "fast")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rate")
}

func TestSettingsCountdown(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "countdown", "off")

	require.NoError(t, err)
	assert.False(t, testMocks.settings.settings.Countdown.Enabled)
	assert.False(t, testMocks.settings.settings.Countdown.OnResume)
	assert.Contains(t, out, "Countdown: off (on resume: off)")
}

func TestSettingsCountdown_OnResume(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "countdown", "on", "--on-resume", "on")

	require.NoError(t, err)
	assert.True(t, testMocks.settings.settings.Countdown.Enabled)
	assert.True(t, testMocks.settings.settings.Countdown.OnResume)
}

func TestSettingsCountdown_BadValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "countdown", "maybe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "use on or off")
}

func TestSettingsRewind(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "rewind", "3")

	require.NoError(t, err)
	assert.Equal(t, 3, testMocks.settings.settings.Resume.RewindSentences)
	assert.Contains(t, out, "Resume rewinds 3 sentences")
}

func TestSettingsRewind_Negative(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "", "settings", "rewind", "--", "-1")

	assert.Error(t, err)
	assert.Equal(t, 1, testMocks.settings.settings.Resume.RewindSentences)
}

func TestSettingsRetention(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "", "settings", "retention", "0")

	require.NoError(t, err)
	assert.Equal(t, 0, testMocks.settings.settings.History.RetentionDays)
	assert.Contains(t, out, "History is kept forever")
}

func TestSettingsReset_Cancelled(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "\n", "settings", "reset")

	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, 0, testMocks.settings.resets)
}

func TestSettingsReset_YesFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testMocks.settings.settings.Reading.RateWPM = 650

	out, err := execute(t, "", "settings", "reset", "--yes")

	require.NoError(t, err)
	assert.Equal(t, 1, testMocks.settings.resets)
	assert.Equal(t, 400, testMocks.settings.settings.Reading.RateWPM)
	assert.Contains(t, out, "Settings restored to defaults.")
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 12 ", 12, false},
		{"-3", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCount(tt.input, "value")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOnOff(t *testing.T) {
	for _, in := range []string{"on", "ON", "yes", "true", "1"} {
		got, err := parseOnOff(in)
		require.NoError(t, err)
		assert.True(t, got, in)
	}
	for _, in := range []string{"off", "no", "false", "0"} {
		got, err := parseOnOff(in)
		require.NoError(t, err)
		assert.False(t, got, in)
	}
	_, err := parseOnOff("sometimes")
	assert.Error(t, err)
}
