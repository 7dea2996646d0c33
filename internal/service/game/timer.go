package game

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ComboTimer is a cancellable expiry handle for one combo. Arm replaces any
// pending callback, so a fresh completion never sees a stale expiry.
type ComboTimer struct {
	clock clockwork.Clock

	mu    sync.Mutex
	timer clockwork.Timer
	gen   uint64
}

// NewComboTimer creates an unarmed timer.
func NewComboTimer(clock clockwork.Clock) *ComboTimer {
	return &ComboTimer{clock: clock}
}

// Arm cancels the pending callback, if any, and schedules fn after d.
func (t *ComboTimer) Arm(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Cancel stops the pending callback. It reports whether one was pending.
func (t *ComboTimer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer == nil {
		return false
	}
	stopped := t.timer.Stop()
	t.timer = nil
	return stopped
}

// Armed reports whether a callback is pending.
func (t *ComboTimer) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
