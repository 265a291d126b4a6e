// Package animation advances time-driven component state. Nothing here
// owns a timer: the host supplies the time delta each frame and the
// Clock forwards it to the animated instances currently visible, issuing
// a redraw request only when a tick actually changed what is drawn.
package animation

import (
	"time"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/host"
)

// Clock drives the animated instances of one root. The host calls Step
// once per frame with the elapsed delta; instances removed from the view
// tree are removed from the clock and receive no further ticks.
type Clock struct {
	entries []clockEntry
}

type clockEntry struct {
	node       core.Node
	invalidate host.InvalidateFunc
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// Add registers a visible animated instance. The invalidate function is
// called whenever a tick changes the instance's visual state; it may be
// nil for hosts that repaint unconditionally.
func (c *Clock) Add(node core.Node, invalidate host.InvalidateFunc) {
	for _, entry := range c.entries {
		if entry.node.ID() == node.ID() {
			return
		}
	}
	c.entries = append(c.entries, clockEntry{node: node, invalidate: invalidate})
}

// Remove unregisters an instance. Unknown ids are ignored.
func (c *Clock) Remove(id core.ID) {
	for i, entry := range c.entries {
		if entry.node.ID() == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered instances.
func (c *Clock) Len() int {
	return len(c.entries)
}

// Step advances every registered instance by dt and requests redraws for
// the ones whose visual state changed. It returns true when at least one
// instance changed.
func (c *Clock) Step(dt time.Duration) bool {
	var changed bool
	for _, entry := range c.entries {
		if entry.node.Tick(dt) {
			changed = true
			if entry.invalidate != nil {
				entry.invalidate()
			}
		}
	}
	return changed
}
