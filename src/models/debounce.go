package models

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid inputs into one action: every Trigger restarts
// a single delayed task, so only the last call within the window fires.
// Used by the temperature entry so typing "2", "23", "23.5" emits one reading.
type Debouncer struct {
	window time.Duration
	mutex  sync.Mutex
	timer  *time.Timer
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = 400 * time.Millisecond
	}
	return &Debouncer{window: window}
}

// Trigger schedules f to run after the window, cancelling any pending run.
func (d *Debouncer) Trigger(f func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, f)
}

// Stop cancels any pending action.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
