// Package sched provides the trailing-debounce scheduler that coalesces
// bursts of filter mutations into a single recomputation.
package sched

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet window applied when none is configured.
const DefaultWindow = 90 * time.Millisecond

// Debouncer coalesces Schedule calls: each call cancels any pending run
// and rearms the timer, so the callback fires once per quiet period and
// always the most recently scheduled one. The callback never runs
// synchronously inside Schedule.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	pending func()
	gen     uint64
	stopped bool
}

// New returns a Debouncer with the given quiet window. Non-positive
// windows fall back to DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Schedule arms (or rearms) the debounce timer with fn. A later call
// supersedes an earlier pending one.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	// Stop may report false for a timer that already fired; the
	// generation makes that in-flight fire a no-op instead of letting
	// it steal the freshly armed callback.
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire runs the pending callback, unless it was superseded or
// cancelled after this timer expired.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CancelPending drops any not-yet-fired callback.
func (d *Debouncer) CancelPending() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs the pending callback immediately, if there is one, and
// disarms the timer. Used on route transitions that need results now.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.gen++
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels any pending callback and rejects further scheduling.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
