// Package theme holds the display mode shared by every surface of the app.
// The mode lives in an explicit context object constructed once at startup;
// there is no ambient global.
package theme

import "sync"

// Mode is a display mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Context carries the current display mode. It is safe for concurrent use.
type Context struct {
	mu   sync.RWMutex
	mode Mode
}

// New creates a theme context with the given initial mode. Unknown values
// fall back to light.
func New(initial Mode) *Context {
	if initial != ModeDark {
		initial = ModeLight
	}
	return &Context{mode: initial}
}

// Mode returns the current display mode.
func (c *Context) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Toggle flips between light and dark and returns the new mode. Toggling
// twice restores the original mode.
func (c *Context) Toggle() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeLight {
		c.mode = ModeDark
	} else {
		c.mode = ModeLight
	}
	return c.mode
}
