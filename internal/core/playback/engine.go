package playback

import (
	"time"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Countdown and skip defaults.
const (
	DefaultCountdownFrom    = 3
	DefaultCountdownCadence = 700 * time.Millisecond
	DefaultGoDelay          = 500 * time.Millisecond
	DefaultSkipCount        = 5
)

// Options configures an Engine. They are read once at construction.
type Options struct {
	// RateWPM is the starting rate.
	RateWPM int

	// MinRateWPM and MaxRateWPM bound every rate change.
	MinRateWPM int
	MaxRateWPM int

	// RateStep is the increment used by IncreaseRate and DecreaseRate.
	RateStep int

	// CountdownEnabled counts down before a fresh start.
	CountdownEnabled bool

	// CountdownOnResume counts down before a resumed start.
	// Has no effect unless CountdownEnabled is set.
	CountdownOnResume bool

	// CountdownFrom is the first countdown value.
	CountdownFrom int

	// CountdownCadence is the delay between countdown values.
	CountdownCadence time.Duration

	// GoDelay is how long the "go" marker shows before playback.
	GoDelay time.Duration

	// StartIndex is the saved position. A positive value marks a resume.
	StartIndex int

	// RewindSentences is applied to StartIndex on resume.
	RewindSentences int

	// SkipCount is the default distance for SkipForward and SkipBackward.
	SkipCount int
}

// OptionsFromSettings builds Options from application settings.
func OptionsFromSettings(s domain.AppSettings, startIndex int) Options {
	return Options{
		RateWPM:           s.Reading.RateWPM,
		MinRateWPM:        s.Reading.MinRateWPM,
		MaxRateWPM:        s.Reading.MaxRateWPM,
		RateStep:          s.Reading.RateStep,
		CountdownEnabled:  s.Countdown.Enabled,
		CountdownOnResume: s.Countdown.OnResume,
		CountdownFrom:     DefaultCountdownFrom,
		CountdownCadence:  DefaultCountdownCadence,
		GoDelay:           DefaultGoDelay,
		StartIndex:        startIndex,
		RewindSentences:   s.Resume.RewindSentences,
		SkipCount:         DefaultSkipCount,
	}
}

// DefaultOptions returns Options for the default settings at position zero.
func DefaultOptions() Options {
	return OptionsFromSettings(domain.DefaultAppSettings(), 0)
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Engine is the playback state machine for a single Article.
//
//	Ready --Begin--> Counting --(countdown, go)--> Playing
//	Ready --Begin--> Playing
//	Playing <--Pause/Resume--> Paused
//	Playing --Advance at last word--> Paused
//	any --Close--> Closed
type Engine struct {
	clock driven.Clock
	words []string
	opts  Options

	state     State
	index     int
	word      string
	orp       int
	countdown int
	rate      int
	resume    bool
	finished  bool

	tickTimer      driven.Timer
	countdownTimer driven.Timer

	subscribers []subscriber
	nextSubID   int
}

// NewEngine creates an engine in the Ready state.
// On resume the start position is rewound by opts.RewindSentences and
// clamped to the word range.
func NewEngine(article *domain.Article, clock driven.Clock, opts Options) *Engine {
	var words []string
	if article != nil {
		words = article.Words
	}

	if opts.MinRateWPM < 1 {
		opts.MinRateWPM = 1
	}
	if opts.MaxRateWPM < opts.MinRateWPM {
		opts.MaxRateWPM = opts.MinRateWPM
	}
	if opts.SkipCount <= 0 {
		opts.SkipCount = DefaultSkipCount
	}

	e := &Engine{
		clock:  clock,
		words:  words,
		opts:   opts,
		state:  StateReady,
		resume: opts.StartIndex > 0,
	}
	e.rate = e.clampRate(opts.RateWPM)

	start := opts.StartIndex
	if e.resume {
		start = Rewind(words, start, opts.RewindSentences)
	}
	e.index = e.clampIndex(start)
	e.updateWord()
	return e
}

// Subscribe registers fn to receive a Snapshot after every state change.
// The returned function removes the subscription.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	e.nextSubID++
	id := e.nextSubID
	e.subscribers = append(e.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subscribers {
			if s.id == id {
				e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     e.state,
		Index:     e.index,
		WordCount: len(e.words),
		Word:      e.word,
		ORP:       e.orp,
		Countdown: e.countdown,
		RateWPM:   e.rate,
		Resume:    e.resume,
		Finished:  e.Finished(),
	}
}

// State returns the active state.
func (e *Engine) State() State {
	return e.state
}

// Position returns the current word index.
func (e *Engine) Position() int {
	return e.index
}

// Rate returns the current rate in words per minute.
func (e *Engine) Rate() int {
	return e.rate
}

// Interval returns the time between word advances at the current rate.
func (e *Engine) Interval() time.Duration {
	return time.Duration(float64(time.Minute) / float64(e.rate))
}

// Finished reports whether playback reached the last word and stopped there.
func (e *Engine) Finished() bool {
	return e.finished && e.state == StatePaused && e.index == len(e.words)-1
}

// IsResume reports whether the engine was opened mid-article.
func (e *Engine) IsResume() bool {
	return e.resume
}

// Begin leaves the Ready state, counting down first if enabled for this
// kind of session.
func (e *Engine) Begin() {
	if e.state != StateReady {
		return
	}
	if e.shouldCountdown() {
		e.startCountdown()
		return
	}
	e.play()
}

// Advance moves to the next word. At the last word it pauses instead.
// It is a no-op unless Playing.
func (e *Engine) Advance() {
	if e.state != StatePlaying {
		return
	}
	if e.index >= len(e.words)-1 {
		e.finished = true
		e.stopTick()
		e.state = StatePaused
		e.notify()
		return
	}
	e.index++
	e.updateWord()
	e.scheduleTick()
	e.notify()
}

// Pause stops advancing without losing position.
func (e *Engine) Pause() {
	if e.state != StatePlaying {
		return
	}
	e.stopTick()
	e.state = StatePaused
	e.notify()
}

// Resume restarts advancing from the current position with a full interval.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.play()
}

// Toggle begins from Ready, pauses while Playing and resumes while Paused.
// It is ignored during the countdown.
func (e *Engine) Toggle() {
	switch e.state {
	case StateReady:
		e.Begin()
	case StatePlaying:
		e.Pause()
	case StatePaused:
		e.Resume()
	}
}

// SetRate changes the rate, clamped to the configured range. While Playing
// the tick is rescheduled from zero at the new interval.
func (e *Engine) SetRate(wpm int) {
	if e.state == StateClosed {
		return
	}
	e.rate = e.clampRate(wpm)
	if e.state == StatePlaying {
		e.scheduleTick()
	}
	e.notify()
}

// IncreaseRate raises the rate by one step.
func (e *Engine) IncreaseRate() {
	e.SetRate(e.rate + e.opts.RateStep)
}

// DecreaseRate lowers the rate by one step.
func (e *Engine) DecreaseRate() {
	e.SetRate(e.rate - e.opts.RateStep)
}

// SkipForward moves n words ahead (the default skip count when n <= 0).
// The play/pause state is unchanged.
func (e *Engine) SkipForward(n int) {
	if n <= 0 {
		n = e.opts.SkipCount
	}
	e.SeekTo(e.index + n)
}

// SkipBackward moves n words back (the default skip count when n <= 0).
// The play/pause state is unchanged.
func (e *Engine) SkipBackward(n int) {
	if n <= 0 {
		n = e.opts.SkipCount
	}
	e.SeekTo(e.index - n)
}

// SeekTo moves to index, clamped to [0, WordCount-1].
func (e *Engine) SeekTo(index int) {
	if e.state == StateClosed {
		return
	}
	index = e.clampIndex(index)
	if index != e.index {
		e.finished = false
	}
	e.index = index
	e.updateWord()
	e.notify()
}

// Close cancels any outstanding countdown or tick and disables the engine.
// No callback fires after Close returns.
func (e *Engine) Close() {
	if e.state == StateClosed {
		return
	}
	e.stopTick()
	e.stopCountdown()
	e.state = StateClosed
	e.notify()
	e.subscribers = nil
}

func (e *Engine) shouldCountdown() bool {
	if e.opts.CountdownFrom <= 0 {
		return false
	}
	if e.resume {
		return e.opts.CountdownEnabled && e.opts.CountdownOnResume
	}
	return e.opts.CountdownEnabled
}

func (e *Engine) startCountdown() {
	e.state = StateCounting
	e.countdown = e.opts.CountdownFrom
	e.scheduleCountdown(e.opts.CountdownCadence, e.onCountdownTick)
	e.notify()
}

func (e *Engine) onCountdownTick() {
	e.countdownTimer = nil
	if e.state != StateCounting {
		return
	}
	if e.countdown > 1 {
		e.countdown--
		e.scheduleCountdown(e.opts.CountdownCadence, e.onCountdownTick)
	} else {
		e.countdown = 0
		e.scheduleCountdown(e.opts.GoDelay, e.onCountdownDone)
	}
	e.notify()
}

func (e *Engine) onCountdownDone() {
	e.countdownTimer = nil
	if e.state != StateCounting {
		return
	}
	e.play()
}

// play enters Playing and schedules the first tick.
func (e *Engine) play() {
	if e.index >= len(e.words) {
		e.state = StatePaused
		e.notify()
		return
	}
	e.state = StatePlaying
	e.scheduleTick()
	e.notify()
}

func (e *Engine) onTick() {
	e.tickTimer = nil
	e.Advance()
}

func (e *Engine) scheduleTick() {
	e.stopTick()
	e.tickTimer = e.clock.AfterFunc(e.Interval(), e.onTick)
}

func (e *Engine) stopTick() {
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
}

func (e *Engine) scheduleCountdown(d time.Duration, fn func()) {
	e.stopCountdown()
	e.countdownTimer = e.clock.AfterFunc(d, fn)
}

func (e *Engine) stopCountdown() {
	if e.countdownTimer != nil {
		e.countdownTimer.Stop()
		e.countdownTimer = nil
	}
}

func (e *Engine) updateWord() {
	if e.index < 0 || e.index >= len(e.words) {
		e.word = ""
		e.orp = 0
		return
	}
	e.word = e.words[e.index]
	e.orp = ORP(e.word)
}

func (e *Engine) clampIndex(i int) int {
	return max(0, min(i, len(e.words)-1))
}

func (e *Engine) clampRate(wpm int) int {
	return min(max(wpm, e.opts.MinRateWPM), e.opts.MaxRateWPM)
}

func (e *Engine) notify() {
	if len(e.subscribers) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, s := range e.subscribers {
		s.fn(snap)
	}
}
