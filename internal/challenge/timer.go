// Package challenge holds the countdown logic for timed challenge mode.
package challenge

import (
	"sync"
	"time"
)

// Timer is a pausable countdown. Pausing freezes the elapsed total exactly;
// resuming continues from the frozen value, so repeated pause/resume cycles
// accumulate no drift. The timer never goes below zero remaining.
type Timer struct {
	mu        sync.Mutex
	limit     time.Duration
	elapsed   time.Duration
	startedAt time.Time
	running   bool
	now       func() time.Time
}

// NewTimer creates a stopped countdown over the given limit.
func NewTimer(limit time.Duration) *Timer {
	return &Timer{
		limit: limit,
		now:   time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now
	return t
}

// Start begins (or restarts) the countdown from zero elapsed.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.elapsed = 0
	t.startedAt = t.now()
	t.running = true
}

// Pause freezes the countdown. Pausing a stopped timer is a no-op.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.elapsed += t.now().Sub(t.startedAt)
	t.running = false
}

// Resume continues a paused countdown from its exact remaining value.
// Resuming a running timer is a no-op.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.startedAt = t.now()
	t.running = true
}

// Stop freezes the countdown and reports the total elapsed time.
func (t *Timer) Stop() time.Duration {
	t.Pause()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Elapsed returns the total time spent running so far.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsedLocked()
}

// Remaining returns the time left on the clock, never below zero.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	left := t.limit - t.elapsedLocked()
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the countdown has run out.
func (t *Timer) Expired() bool {
	return t.Remaining() == 0
}

func (t *Timer) elapsedLocked() time.Duration {
	if t.running {
		return t.elapsed + t.now().Sub(t.startedAt)
	}
	return t.elapsed
}
