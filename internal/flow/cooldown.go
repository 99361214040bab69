package flow

import (
	"sync"
	"time"
)

// Cooldown gates a resend action: an integer second counter ticked down by
// its own goroutine, clamped at zero. It belongs to a VerificationChallenge
// and must be stopped when the challenge is destroyed.
type Cooldown struct {
	mu        sync.Mutex
	remaining int

	stopOnce sync.Once
	stop     chan struct{}
}

// NewCooldown starts at initial seconds, clamped to [0, window].
func NewCooldown(initial, window int) *Cooldown {
	if initial < 0 {
		initial = 0
	}
	if initial > window {
		initial = window
	}
	return &Cooldown{remaining: initial, stop: make(chan struct{})}
}

// Start launches the countdown goroutine. The interval is one second in
// production; tests shrink it. The goroutine keeps ticking after reaching
// zero so a later Reset resumes counting without a restart.
func (c *Cooldown) Start(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-t.C:
				c.mu.Lock()
				if c.remaining > 0 {
					c.remaining--
				}
				c.mu.Unlock()
			}
		}
	}()
}

// Stop cancels the countdown goroutine. Safe to call more than once.
func (c *Cooldown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Ready reports whether the gated action may run.
func (c *Cooldown) Ready() bool {
	return c.Remaining() == 0
}

// Reset rewinds the counter, clamping negative values to zero.
func (c *Cooldown) Reset(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.mu.Lock()
	c.remaining = seconds
	c.mu.Unlock()
}
