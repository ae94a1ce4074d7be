package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Ensure Virtual implements the interface.
var _ driven.Clock = (*Virtual)(nil)

// Virtual is a manually advanced clock. Callbacks run synchronously inside
// Advance, in deadline order, on the caller's goroutine.
type Virtual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*virtualTimer
}

// NewVirtual creates a virtual clock at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (c *Virtual) AfterFunc(d time.Duration, fn func()) driven.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &virtualTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback that
// becomes due, including callbacks scheduled by earlier callbacks.
func (c *Virtual) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.remove(next)
		c.now = next.deadline
		c.mu.Unlock()

		next.fn()
	}
}

// Now returns the elapsed virtual time.
func (c *Virtual) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of scheduled callbacks that have not run.
func (c *Virtual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// NextDeadline returns the time until the earliest pending callback.
// ok is false when nothing is pending.
func (c *Virtual) NextDeadline() (d time.Duration, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return 0, false
	}
	c.sortTimers()
	return c.timers[0].deadline - c.now, true
}

// nextDue returns the earliest timer due at or before target (caller holds lock).
func (c *Virtual) nextDue(target time.Duration) *virtualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	c.sortTimers()
	if c.timers[0].deadline > target {
		return nil
	}
	return c.timers[0]
}

func (c *Virtual) sortTimers() {
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].deadline == c.timers[j].deadline {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline < c.timers[j].deadline
	})
}

// remove drops t from the pending list (caller holds lock).
func (c *Virtual) remove(t *virtualTimer) bool {
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type virtualTimer struct {
	clock    *Virtual
	deadline time.Duration
	seq      int
	fn       func()
}

// Stop cancels the callback if it has not run.
func (t *virtualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.remove(t)
}
