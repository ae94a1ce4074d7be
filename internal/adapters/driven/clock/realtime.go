package clock

import (
	"sync/atomic"
	"time"

	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Ensure Realtime implements the interface.
var _ driven.Clock = (*Realtime)(nil)

// Realtime schedules callbacks with time.AfterFunc and hands each one to a
// dispatch function instead of running it on the timer goroutine.
type Realtime struct {
	dispatch func(func())
}

// NewRealtime creates a real-time clock. dispatch must run the given
// function on the host's event loop; a nil dispatch runs callbacks
// directly on the timer goroutine.
func NewRealtime(dispatch func(func())) *Realtime {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Realtime{dispatch: dispatch}
}

// AfterFunc schedules fn to run after d.
func (c *Realtime) AfterFunc(d time.Duration, fn func()) driven.Timer {
	t := &realtimeTimer{}
	t.timer = time.AfterFunc(d, func() {
		c.dispatch(func() {
			// A timer stopped after it fired but before dispatch ran must not run.
			if t.stopped.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

type realtimeTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop cancels the callback.
func (t *realtimeTimer) Stop() bool {
	t.timer.Stop()
	return t.stopped.CompareAndSwap(false, true)
}
