package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("reading.rate_wpm", int64(550))
	_ = store.Set("countdown.enabled", false)
	_ = store.Set("countdown.on_resume", true)
	_ = store.Set("resume.rewind_sentences", int64(2))
	_ = store.Set("fetch.user_agent", "custom/1.0")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 550, settings.Reading.RateWPM)
	assert.False(t, settings.Countdown.Enabled)
	assert.True(t, settings.Countdown.OnResume)
	assert.Equal(t, 2, settings.Resume.RewindSentences)
	assert.Equal(t, "custom/1.0", settings.Fetch.UserAgent)
	assert.Equal(t, 200, settings.Reading.MinRateWPM)
}

func TestSettingsService_Get_StoredZeroIsKept(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("resume.rewind_sentences", 0)
	_ = store.Set("history.retention_days", 0)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Zero(t, settings.Resume.RewindSentences)
	assert.Zero(t, settings.History.RetentionDays)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Reading.RateWPM = 650
	settings.Countdown.OnResume = true
	settings.History.MaxSessions = 20

	require.NoError(t, service.Save(&settings))

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *retrieved)
	assert.Equal(t, 650, store.GetInt("reading.rate_wpm"))
	assert.True(t, store.GetBool("countdown.on_resume"))
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Reading.MinRateWPM = 900

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, exists := store.Get("reading.min_rate_wpm")
	assert.False(t, exists)
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	store := &failingConfigStore{ConfigStore: memory.NewConfigStore(), err: errors.New("disk full")}
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	err := service.Save(&settings)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save reading.rate_wpm")
	assert.Contains(t, err.Error(), "disk full")
}

func TestSettingsService_SetRate(t *testing.T) {
	tests := []struct {
		name     string
		wpm      int
		expected int
	}{
		{"within range", 450, 450},
		{"below minimum", 50, 200},
		{"above maximum", 5000, 800},
		{"at boundary", 800, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.SetRate(tt.wpm))

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings.Reading.RateWPM)
		})
	}
}

func TestSettingsService_SetCountdown(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetCountdown(false, true))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Countdown.Enabled)
	assert.True(t, settings.Countdown.OnResume)
}

func TestSettingsService_SetRewindSentences(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetRewindSentences(3))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.Resume.RewindSentences)

	err = service.SetRewindSentences(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetHistoryRetention(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetHistoryRetention(0))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Zero(t, settings.History.RetentionDays)

	err = service.SetHistoryRetention(-7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Reset(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("unrelated.key", "kept")
	service := NewSettingsService(store)
	require.NoError(t, service.SetRate(700))
	require.NoError(t, service.SetCountdown(false, true))

	require.NoError(t, service.Reset())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, "kept", store.GetString("unrelated.key"))
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Validate())

	_ = store.Set("reading.rate_step", 0)
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

// failingConfigStore fails every write.
type failingConfigStore struct {
	*memory.ConfigStore
	err error
}

func (s *failingConfigStore) Set(string, any) error { return s.err }
func (s *failingConfigStore) Delete(string) error { return s.err }
