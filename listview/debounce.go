package listview

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the bounded delay applied to search text changes
// before recomputation.
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into one callback after a quiet period.
// The latest trigger always supersedes a pending one.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given delay;
// non-positive delays fall back to DefaultSearchDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any pending
// callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
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
