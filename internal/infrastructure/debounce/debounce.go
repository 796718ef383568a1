// Package debounce coalesces bursts of calls into a single trailing
// invocation, the way the search form coalesces keystrokes into one request.
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes a function once the configured window has elapsed with no
// further calls. Each Call restarts the trailing timer, so only the last
// function of a burst runs.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	pending func()
}

// New creates a Debouncer with the given quiet window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Call schedules fn to run after the quiet window, cancelling any previously
// scheduled call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		fn := d.pending
		d.pending = nil
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
}

// Flush runs any pending call immediately instead of waiting for the window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
