package driven

import "time"

// Clock schedules one-shot callbacks.
// Implementations must run every callback on the same logical thread
// the engine is driven from.
type Clock interface {
	// AfterFunc runs fn once d has elapsed, unless the returned Timer is stopped first.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback
	// already ran or the timer was already stopped.
	Stop() bool
}
