package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

const engineText = "The cat sat. It was happy. Then it slept."

func newTestEngine(t *testing.T, opts Options) (*Engine, *clock.Virtual) {
	t.Helper()
	article, err := domain.NewArticle("a-1", "https://example.com", "Cats", engineText)
	require.NoError(t, err)
	c := clock.NewVirtual()
	return NewEngine(article, c, opts), c
}

func noCountdown() Options {
	opts := DefaultOptions()
	opts.CountdownEnabled = false
	return opts
}

func TestNewEngine_Ready(t *testing.T) {
	e, c := newTestEngine(t, DefaultOptions())

	snap := e.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 9, snap.WordCount)
	assert.Equal(t, "The", snap.Word)
	assert.Equal(t, 1, snap.ORP)
	assert.Equal(t, 400, snap.RateWPM)
	assert.False(t, snap.Resume)
	assert.Equal(t, 0, c.Pending())
}

func TestEngine_Interval(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())
	assert.Equal(t, 150*time.Millisecond, e.Interval())

	e.SetRate(300)
	assert.Equal(t, 200*time.Millisecond, e.Interval())
}

func TestEngine_BeginWithoutCountdown(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())

	e.Begin()

	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, 1, c.Pending())
}

func TestEngine_BeginTwiceIsNoop(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())

	e.Begin()
	e.Begin()

	assert.Equal(t, 1, c.Pending())
}

func TestEngine_TicksAdvance(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, 1, e.Position())
	assert.Equal(t, "cat", e.Snapshot().Word)

	c.Advance(300 * time.Millisecond)
	assert.Equal(t, 3, e.Position())
	assert.Equal(t, "It", e.Snapshot().Word)
	assert.Equal(t, 1, c.Pending())
}

func TestEngine_AdvanceAtEndPauses(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.SeekTo(7)
	e.Begin()

	e.Advance()
	assert.Equal(t, 8, e.Position())
	assert.Equal(t, StatePlaying, e.State())

	e.Advance()
	assert.Equal(t, 8, e.Position())
	assert.Equal(t, StatePaused, e.State())
	assert.True(t, e.Finished())
	assert.Equal(t, 0, c.Pending())

	e.Advance()
	assert.Equal(t, 8, e.Position())
	assert.Equal(t, StatePaused, e.State())
}

func TestEngine_PlaysToEndAndStops(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()

	c.Advance(10 * time.Second)

	assert.Equal(t, 8, e.Position())
	assert.Equal(t, "slept.", e.Snapshot().Word)
	assert.Equal(t, StatePaused, e.State())
	assert.True(t, e.Snapshot().Finished)
	assert.Equal(t, 0, c.Pending())
}

func TestEngine_AdvanceIgnoredUnlessPlaying(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())

	e.Advance()
	assert.Equal(t, 0, e.Position())
	assert.Equal(t, StateReady, e.State())
}

func TestEngine_PauseCancelsTick(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	c.Advance(150 * time.Millisecond)

	e.Pause()
	assert.Equal(t, StatePaused, e.State())
	assert.Equal(t, 0, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, 1, e.Position())
}

func TestEngine_ResumeRestartsInterval(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()

	c.Advance(100 * time.Millisecond)
	e.Pause()
	e.Resume()
	assert.Equal(t, StatePlaying, e.State())

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, 0, e.Position(), "partial interval must not carry over")

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, e.Position())
}

func TestEngine_Toggle(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())

	e.Toggle()
	assert.Equal(t, StatePlaying, e.State())
	e.Toggle()
	assert.Equal(t, StatePaused, e.State())
	e.Toggle()
	assert.Equal(t, StatePlaying, e.State())
}

func TestEngine_RateChangeWhilePlayingKeepsPosition(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	c.Advance(300 * time.Millisecond)
	require.Equal(t, 2, e.Position())

	c.Advance(100 * time.Millisecond)
	e.IncreaseRate()

	assert.Equal(t, 2, e.Position())
	assert.Equal(t, 450, e.Rate())
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, 1, c.Pending())

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, e.Position(), "interval restarts from zero after a rate change")

	c.Advance(34 * time.Millisecond)
	assert.Equal(t, 3, e.Position())
}

func TestEngine_RateClamped(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())

	e.SetRate(5000)
	assert.Equal(t, 800, e.Rate())
	e.IncreaseRate()
	assert.Equal(t, 800, e.Rate())

	for range 20 {
		e.DecreaseRate()
	}
	assert.Equal(t, 200, e.Rate())
}

func TestEngine_RateChangeWhilePausedDoesNotSchedule(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	e.Pause()

	e.IncreaseRate()

	assert.Equal(t, StatePaused, e.State())
	assert.Equal(t, 0, c.Pending())
}

func TestEngine_Countdown(t *testing.T) {
	e, c := newTestEngine(t, DefaultOptions())

	e.Begin()
	snap := e.Snapshot()
	assert.Equal(t, StateCounting, snap.State)
	assert.Equal(t, 3, snap.Countdown)
	assert.False(t, snap.ShowGo())

	c.Advance(700 * time.Millisecond)
	assert.Equal(t, 2, e.Snapshot().Countdown)

	c.Advance(700 * time.Millisecond)
	assert.Equal(t, 1, e.Snapshot().Countdown)

	c.Advance(700 * time.Millisecond)
	assert.True(t, e.Snapshot().ShowGo())
	assert.Equal(t, StateCounting, e.State())

	c.Advance(499 * time.Millisecond)
	assert.Equal(t, StateCounting, e.State())

	c.Advance(time.Millisecond)
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, 0, e.Position())
	assert.Equal(t, 1, c.Pending())
}

func TestEngine_CountdownIgnoresToggle(t *testing.T) {
	e, c := newTestEngine(t, DefaultOptions())
	e.Begin()

	e.Toggle()
	e.Pause()
	assert.Equal(t, StateCounting, e.State())
	assert.Equal(t, 1, c.Pending())
}

func TestEngine_RateChangeKeepsCountdown(t *testing.T) {
	e, c := newTestEngine(t, DefaultOptions())
	e.Begin()
	c.Advance(700 * time.Millisecond)

	e.IncreaseRate()

	assert.Equal(t, StateCounting, e.State())
	assert.Equal(t, 2, e.Snapshot().Countdown)
	assert.Equal(t, 1, c.Pending())
}

func TestEngine_CloseDuringCountdown(t *testing.T) {
	e, c := newTestEngine(t, DefaultOptions())
	e.Begin()
	c.Advance(2100 * time.Millisecond)
	require.True(t, e.Snapshot().ShowGo())

	e.Close()

	assert.Equal(t, StateClosed, e.State())
	assert.Equal(t, 0, c.Pending())

	c.Advance(10 * time.Second)
	assert.Equal(t, StateClosed, e.State())
	assert.Equal(t, 0, e.Position())
}

func TestEngine_CloseWhilePlaying(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	c.Advance(150 * time.Millisecond)

	e.Close()
	c.Advance(time.Second)

	assert.Equal(t, 1, e.Position())
	assert.Equal(t, 0, c.Pending())

	e.Toggle()
	e.SkipForward(3)
	e.SetRate(600)
	assert.Equal(t, StateClosed, e.State())
	assert.Equal(t, 1, e.Position())
}

func TestEngine_ResumeRewindsOneSentence(t *testing.T) {
	opts := DefaultOptions()
	opts.StartIndex = 8

	e, _ := newTestEngine(t, opts)

	assert.True(t, e.IsResume())
	assert.Equal(t, 6, e.Position())
	assert.Equal(t, "Then", e.Snapshot().Word)
}

func TestEngine_ResumeWithoutRewind(t *testing.T) {
	opts := DefaultOptions()
	opts.StartIndex = 8
	opts.RewindSentences = 0

	e, _ := newTestEngine(t, opts)

	assert.Equal(t, 8, e.Position())
}

func TestEngine_ResumeSkipsCountdownByDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.StartIndex = 4

	e, _ := newTestEngine(t, opts)
	e.Begin()

	assert.Equal(t, StatePlaying, e.State())
}

func TestEngine_ResumeCountsDownWhenConfigured(t *testing.T) {
	opts := DefaultOptions()
	opts.StartIndex = 4
	opts.CountdownOnResume = true

	e, _ := newTestEngine(t, opts)
	e.Begin()

	assert.Equal(t, StateCounting, e.State())
}

func TestEngine_StartIndexBeyondEndIsClamped(t *testing.T) {
	opts := noCountdown()
	opts.StartIndex = 50
	opts.RewindSentences = 0

	e, _ := newTestEngine(t, opts)

	assert.Equal(t, 8, e.Position())
}

func TestEngine_Skip(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())

	e.SkipForward(0)
	assert.Equal(t, 5, e.Position())
	assert.Equal(t, "happy.", e.Snapshot().Word)
	assert.Equal(t, 2, e.Snapshot().ORP)

	e.SkipForward(5)
	assert.Equal(t, 8, e.Position())

	e.SkipBackward(3)
	assert.Equal(t, 5, e.Position())

	e.SkipBackward(0)
	assert.Equal(t, 0, e.Position())

	e.SkipBackward(5)
	assert.Equal(t, 0, e.Position())
	assert.Equal(t, StateReady, e.State())
}

func TestEngine_SkipKeepsPlayState(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	e.Pause()

	e.SkipForward(2)

	assert.Equal(t, StatePaused, e.State())
	assert.Equal(t, 0, c.Pending())
}

func TestEngine_SeekTo(t *testing.T) {
	e, _ := newTestEngine(t, noCountdown())

	e.SeekTo(4)
	assert.Equal(t, 4, e.Position())
	assert.Equal(t, "was", e.Snapshot().Word)

	e.SeekTo(-10)
	assert.Equal(t, 0, e.Position())

	e.SeekTo(100)
	assert.Equal(t, 8, e.Position())
	assert.Equal(t, StateReady, e.State())
}

func TestEngine_SeekClearsFinished(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	e.Begin()
	c.Advance(10 * time.Second)
	require.True(t, e.Finished())

	e.SeekTo(2)

	assert.False(t, e.Finished())
}

func TestEngine_Subscribe(t *testing.T) {
	e, c := newTestEngine(t, noCountdown())
	var got []Snapshot
	unsubscribe := e.Subscribe(func(s Snapshot) { got = append(got, s) })

	e.Begin()
	c.Advance(150 * time.Millisecond)

	require.Len(t, got, 2)
	assert.Equal(t, StatePlaying, got[0].State)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)

	unsubscribe()
	c.Advance(150 * time.Millisecond)
	assert.Len(t, got, 2)
}

func TestEngine_MinimumRateNeverZero(t *testing.T) {
	opts := noCountdown()
	opts.RateWPM = 0
	opts.MinRateWPM = 0
	opts.MaxRateWPM = 0

	e, _ := newTestEngine(t, opts)

	assert.Equal(t, 1, e.Rate())
	assert.Equal(t, time.Minute, e.Interval())
}

func TestSnapshot_ProgressAndRemaining(t *testing.T) {
	snap := Snapshot{Index: 100, WordCount: 400, RateWPM: 300}

	assert.InDelta(t, 0.25, snap.Progress(), 0.0001)
	assert.Equal(t, 60*time.Second, snap.TimeRemaining())
	assert.Zero(t, Snapshot{}.Progress())
	assert.Zero(t, Snapshot{}.TimeRemaining())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "counting", StateCounting.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "unknown", State(42).String())
}
