// Package debounce delays a function call until input has been quiet for a
// while. Interactive search and year-range exploration use it so that only
// the last keystroke triggers a backend request.
package debounce

import (
	"sync"
	"time"
)

// Delays used by the interactive commands.
const (
	SearchDelay    = 400 * time.Millisecond
	YearRangeDelay = 600 * time.Millisecond
)

// Debouncer runs the most recently triggered function once delay has passed
// without another trigger.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	wg      sync.WaitGroup
}

// New returns a Debouncer that waits delay after the last trigger.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger replaces the pending function with fn and restarts the timer.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimer()
	d.pending = fn
	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timer != t {
			d.mu.Unlock()
			return
		}
		fn := d.pending
		d.pending, d.timer = nil, nil
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
	d.timer = t
}

// Flush runs the pending function immediately on the caller's goroutine.
// It reports whether there was anything to run.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopTimer()
	d.pending = nil
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending function without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.stopTimer()
	d.pending = nil
	d.mu.Unlock()
}

// Stop cancels the pending function and waits for a call already in
// progress to return.
func (d *Debouncer) Stop() {
	d.Cancel()
	d.wg.Wait()
}

// stopTimer must be called with mu held.
func (d *Debouncer) stopTimer() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.wg.Done()
	}
	d.timer = nil
}
