// Package search rate-limits search dispatch while the user types. The
// debouncer holds its timer state explicitly instead of relying on a
// captured closure variable, so superseded keystrokes can never leak a
// dispatch.
package search

import (
	"sync"
	"time"
)

// DispatchFunc receives the query text captured at the moment the debounce
// window was last armed.
type DispatchFunc func(query string)

type state int

const (
	stateIdle state = iota
	statePending
)

// Debouncer coalesces rapid keystrokes into a single dispatch. For N
// keystrokes inside one window exactly one dispatch occurs, carrying the
// text of the Nth keystroke. Intermediate values are cancelled outright,
// never dispatched.
type Debouncer struct {
	window   time.Duration
	dispatch DispatchFunc

	mu      sync.Mutex
	st      state
	timer   *time.Timer
	pending string
	armed   uint64
}

func NewDebouncer(window time.Duration, dispatch DispatchFunc) *Debouncer {
	return &Debouncer{window: window, dispatch: dispatch}
}

// Keystroke records the current contents of the search field and restarts
// the debounce window. Any timer armed for an earlier value is stopped.
func (d *Debouncer) Keystroke(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.st == statePending && d.timer != nil {
		d.timer.Stop()
	}
	d.pending = text
	d.st = statePending
	d.armed++
	gen := d.armed
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire runs on timer expiry. A timer that lost a race with a newer
// Keystroke sees a bumped generation and returns without dispatching.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.st != statePending || gen != d.armed {
		d.mu.Unlock()
		return
	}
	query := d.pending
	d.st = stateIdle
	d.timer = nil
	d.mu.Unlock()

	d.dispatch(query)
}

// Flush dispatches any pending value immediately, e.g. when the user
// presses Enter instead of waiting out the window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.st != statePending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	query := d.pending
	d.st = stateIdle
	d.timer = nil
	d.armed++
	d.mu.Unlock()

	d.dispatch(query)
}

// Cancel drops any pending dispatch and returns to idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.st = stateIdle
	d.timer = nil
	d.armed++
}
