package playback

import "time"

// State is the playback state of an Engine.
type State int

const (
	// StateReady is the initial state; nothing has been shown yet.
	StateReady State = iota
	// StateCounting shows the countdown before playback starts.
	StateCounting
	// StatePlaying advances one word per tick.
	StatePlaying
	// StatePaused holds the current position without ticking.
	StatePaused
	// StateClosed is entered by Close; the engine ignores every further call.
	StateClosed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateCounting:
		return "counting"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of an Engine after a mutation.
type Snapshot struct {
	// State is the active playback state.
	State State

	// Index is the current word index.
	Index int

	// WordCount is the number of words loaded.
	WordCount int

	// Word is the word at Index, or "" when there is none.
	Word string

	// ORP is the fixation character index of Word.
	ORP int

	// Countdown is the remaining countdown value while counting.
	// Zero while counting means the "go" marker is showing.
	Countdown int

	// RateWPM is the current rate.
	RateWPM int

	// Resume is true when the engine was opened mid-article.
	Resume bool

	// Finished is true once playback reached the last word.
	Finished bool
}

// ShowGo reports whether the countdown has reached its "go" marker.
func (s Snapshot) ShowGo() bool {
	return s.State == StateCounting && s.Countdown == 0
}

// Progress returns the fraction of words before Index.
func (s Snapshot) Progress() float64 {
	if s.WordCount == 0 {
		return 0
	}
	return float64(s.Index) / float64(s.WordCount)
}

// TimeRemaining estimates the time left at the current rate, in whole seconds.
func (s Snapshot) TimeRemaining() time.Duration {
	if s.WordCount == 0 || s.RateWPM <= 0 {
		return 0
	}
	seconds := (s.WordCount - s.Index) * 60 / s.RateWPM
	return time.Duration(seconds) * time.Second
}
