package domain

import "time"

// Cooldown tracks recently shown exposure keys so the same card does not
// come back immediately. It is session-scoped and never persisted.
type Cooldown struct {
	window time.Duration
	shown  map[string]time.Time
}

// NewCooldown creates an empty tracker with the given window.
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window: window,
		shown:  make(map[string]time.Time),
	}
}

// Prune drops entries older than the window, relative to now.
func (c *Cooldown) Prune(now time.Time) {
	for key, at := range c.shown {
		if now.Sub(at) >= c.window {
			delete(c.shown, key)
		}
	}
}

// Blocked reports whether key is still within the cooldown window.
// It prunes stale entries first, so callers never see expired keys.
func (c *Cooldown) Blocked(key string, now time.Time) bool {
	c.Prune(now)
	_, ok := c.shown[key]
	return ok
}

// Stamp records that key was shown at now.
func (c *Cooldown) Stamp(key string, now time.Time) {
	c.shown[key] = now
}

// Len returns the number of live entries without pruning.
func (c *Cooldown) Len() int {
	return len(c.shown)
}
