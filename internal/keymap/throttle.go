package keymap

import (
	"sync"
	"time"
)

// throttle keeps successive keymap rebuilds at least gap apart. Editors
// often emit several writes per save.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: gap, now: time.Now, sleep: time.Sleep}
}

func (t *throttle) wait() {
	if t == nil || t.gap <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.last.IsZero() {
		if d := t.gap - t.now().Sub(t.last); d > 0 {
			t.sleep(d)
		}
	}
	t.last = t.now()
}
