// Package contextmenu provides a right-click menu. A secondary press on
// the trigger region opens the menu at the cursor point on the exclusive
// context-menu overlay class; near the viewport edge the menu flips to
// the other side of the cursor instead of being cut off.
package contextmenu

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// State is the caller-owned state of one context menu.
type State struct {
	// Open reports whether the menu is showing.
	Open bool
	// Highlight is the index of the highlighted item, -1 for none.
	Highlight int
}

// NewState creates state with no highlight.
func NewState() *State {
	return &State{Highlight: -1}
}

// Item is one menu entry.
type Item struct {
	// Label is the entry text.
	Label string
	// Disabled renders the entry muted and inert.
	Disabled bool
	// OnSelect is called when the entry is chosen.
	OnSelect func()
}

// MenuID returns the conventional instance id for a menu owned by the
// given instance.
func MenuID(owner core.ID) core.ID {
	return owner + "/menu"
}

// ContextMenu is the trigger widget. It covers a region of the main
// tree; secondary presses inside it open the menu. Primary input passes
// through to the optional underlay.
type ContextMenu struct {
	// ID must match the id the trigger is bound with.
	ID core.ID

	// Items are the menu entries.
	Items []Item

	// Underlay is the content the trigger region wraps, if any.
	Underlay core.Node

	// Disabled disables the trigger.
	Disabled bool

	// Measurer sizes the entry labels. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (c ContextMenu) Component() string {
	return style.ComponentContextMenu
}

// Measure implements core.Widget. The trigger takes its underlay's size,
// or the available space when it has none.
func (c ContextMenu) Measure(available graphics.Size, st State) graphics.Size {
	if c.Underlay != nil {
		return c.Underlay.Measure(available)
	}
	return available
}

// Layout implements core.Widget.
func (c ContextMenu) Layout(assigned graphics.Rect, st State) []core.Placement {
	if c.Underlay == nil {
		return nil
	}
	return []core.Placement{{Index: 0, Bounds: assigned}}
}

// Draw implements core.Widget. The trigger draws nothing of its own.
func (c ContextMenu) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	if c.Underlay != nil {
		c.Underlay.Draw(canvas, bounds, sty)
	}
}

// HandleEvent implements core.Widget.
func (c ContextMenu) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	switch ev.Kind {
	case event.PointerPressed:
		if c.Disabled || ev.Button != event.ButtonSecondary || !bounds.Contains(ev.Position) {
			break
		}
		st.Open = true
		st.Highlight = -1
		// A zero-size anchor at the cursor opens the menu at the press
		// point.
		cursor := graphics.Rect{Left: ev.Position.X, Top: ev.Position.Y, Right: ev.Position.X, Bottom: ev.Position.Y}
		content := core.Bind(MenuID(c.ID), menu{trigger: c}, st)
		return core.Reaction{
			Status: event.Consumed,
			OpenOverlay: &core.OverlayRequest{
				Owner:                 c.ID,
				Anchor:                cursor,
				Content:               content,
				Class:                 core.ClassContextMenu,
				DismissOnOutsideClick: true,
			},
			Redraw: true,
		}

	case event.OverlayDismissed:
		st.Open = false
		st.Highlight = -1
		return core.ConsumedRedraw()
	}

	if c.Underlay != nil {
		return c.Underlay.HandleEvent(ev, bounds)
	}
	return core.Ignored()
}

func (c ContextMenu) measurer() host.TextMeasurer {
	if c.Measurer != nil {
		return c.Measurer
	}
	return host.FixedMeasurer{}
}
