package quill

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single callback once a
// quiet window has passed. Watch mode uses it so a save that touches many
// files causes one rebuild, not one per file event.
type Debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
	fn     func()
}

// NewDebouncer creates a Debouncer that invokes fn after window elapses
// without further triggers.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger records an event, resetting the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
