// Package search provides the helpers that sit between raw keystrokes and the
// applied search text: a trailing-edge debouncer and a closest-label
// suggestion for empty result sets.
package search

import (
	"sync"
	"time"
)

// DefaultDelay is the pause after the last keystroke before a search applies.
const DefaultDelay = 500 * time.Millisecond

// Token identifies one scheduled settle. Zero is never issued.
type Token uint64

// Debouncer hands out tokens for scheduled settles. Only the most recent
// token may settle, and nothing settles once the debouncer is stopped. The
// host owns the actual timer (for example a tea.Tick) and asks Settle when it
// fires.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     Token
	pending Token
	stopped bool
}

// NewDebouncer creates a debouncer. Negative delays are treated as zero.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	if d == nil {
		return 0
	}
	return d.delay
}

// Trigger supersedes any pending settle and returns the token for a new one.
// A stopped debouncer returns the zero token, which never settles.
func (d *Debouncer) Trigger() Token {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return 0
	}
	d.seq++
	d.pending = d.seq
	return d.pending
}

// Settle reports whether token is the latest pending token and consumes it.
func (d *Debouncer) Settle(token Token) bool {
	if d == nil || token == 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || token != d.pending {
		return false
	}
	d.pending = 0
	return true
}

// Pending reports whether a settle is outstanding.
func (d *Debouncer) Pending() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != 0
}

// Cancel drops the outstanding settle, if any.
func (d *Debouncer) Cancel() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.pending = 0
	d.mu.Unlock()
}

// Stop tears the debouncer down. Later triggers and settles are inert.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.pending = 0
	d.stopped = true
	d.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (d *Debouncer) Stopped() bool {
	if d == nil {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}
