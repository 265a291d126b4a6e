package core

import (
	"time"

	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// Node is a Widget bound to its state and identity: the type-erased form
// the registry, router and overlay manager operate on. Obtain one with
// Bind.
type Node interface {
	// ID returns the stable instance identity.
	ID() ID

	// Measure returns the desired size within the available space.
	Measure(available graphics.Size) graphics.Size

	// Layout places children within the assigned space.
	Layout(assigned graphics.Rect) []Placement

	// Draw emits draw commands for the component.
	Draw(canvas host.Canvas, bounds graphics.Rect, sty style.Resolver)

	// HandleEvent reacts to one input event.
	HandleEvent(ev event.Event, bounds graphics.Rect) Reaction

	// Tick advances time-driven state and reports whether the visual
	// state changed. Non-animated nodes return false.
	Tick(dt time.Duration) bool

	// Focusable reports whether the node joins keyboard focus traversal.
	Focusable() bool

	// Component returns the style component name.
	Component() string
}

// Bind ties a widget, its caller-owned state and a stable id into a Node.
//
// The bound node enforces the phase rules structurally: read-only phases
// receive a copy of the state value, so a widget cannot mutate caller
// state during measure, layout or draw; HandleEvent and Tick receive the
// pointer and are the only mutation points. The caller keeps owning the
// state and destroys it by dropping the node.
func Bind[S any](id ID, w Widget[S], st *S) Node {
	return &boundNode[S]{id: id, widget: w, state: st}
}

type boundNode[S any] struct {
	id     ID
	widget Widget[S]
	state  *S
}

func (n *boundNode[S]) ID() ID {
	return n.id
}

func (n *boundNode[S]) Component() string {
	return n.widget.Component()
}

func (n *boundNode[S]) Measure(available graphics.Size) graphics.Size {
	return n.widget.Measure(available, *n.state)
}

func (n *boundNode[S]) Layout(assigned graphics.Rect) []Placement {
	return n.widget.Layout(assigned, *n.state)
}

func (n *boundNode[S]) Draw(canvas host.Canvas, bounds graphics.Rect, sty style.Resolver) {
	n.widget.Draw(canvas, bounds, *n.state, sty)
}

func (n *boundNode[S]) HandleEvent(ev event.Event, bounds graphics.Rect) Reaction {
	reaction := n.widget.HandleEvent(ev, bounds, n.state)
	if reaction.OpenOverlay != nil && reaction.OpenOverlay.Owner == "" {
		reaction.OpenOverlay.Owner = n.id
	}
	return reaction
}

func (n *boundNode[S]) Tick(dt time.Duration) bool {
	if animated, ok := n.widget.(Animated[S]); ok {
		return animated.Tick(dt, n.state)
	}
	return false
}

func (n *boundNode[S]) Focusable() bool {
	if focusable, ok := n.widget.(FocusableWidget); ok {
		return focusable.Focusable()
	}
	return false
}
